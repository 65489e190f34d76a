package vdom

// PropType is the prop consulted by the view cache to recognize views that
// must outlive back-navigation sweeps.
const PropType = "type"

// TypeTabBar marks the root view of a tab-bar page.
const TypeTabBar = "tabBar"

// VNode represents a virtual DOM node.
type VNode struct {
	Tag        string         // The HTML tag name
	Key        string         // Reconciliation key; page roots carry their route key
	Attributes map[string]any // The attributes of the node
	Props      map[string]any // Framework props, never rendered as attributes
	Children   []*VNode       // The child nodes
	Content    string         // The content of the node
	OnClick    func()         // Optional click event handler
}

// NewVNode creates a new VNode.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	var onClick func()
	if attributes != nil {
		if v, ok := attributes["onClick"]; ok {
			if f, ok := v.(func()); ok {
				onClick = f
				// Remove from attributes so it doesn't get rendered as an HTML attribute
				delete(attributes, "onClick")
			}
		}
	}
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
		OnClick:    onClick,
	}
}

// SetProp sets a framework prop on the node.
func (v *VNode) SetProp(name string, value any) {
	if v.Props == nil {
		v.Props = make(map[string]any)
	}
	v.Props[name] = value
}

// Prop returns a framework prop, or nil.
func (v *VNode) Prop(name string) any {
	if v == nil || v.Props == nil {
		return nil
	}
	return v.Props[name]
}

// IsTabBar reports whether the node is the root view of a tab-bar page.
func (v *VNode) IsTabBar() bool {
	t, _ := v.Prop(PropType).(string)
	return t == TypeTabBar
}

// Paragraph creates a <p> VNode with the given text as its child and allows passing attributes.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Button creates a <button> VNode with the given children and allows passing attributes.
func Button(content string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("button", attrs, children, content)
}
