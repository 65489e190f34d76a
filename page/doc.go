// Package page tracks the pages of a running application: it allocates page
// ids, keeps the registry of live pages, retains page views for back/forward
// navigation and wires scroll and reach-bottom events between the host
// document and the page components.
//
// Everything in this package runs on the single event loop of the host. A
// Session owns the process-wide slots (current scroll listener, current body
// scope id) and the two deferral points, which are submitted to a
// scheduler.Scheduler instead of relying on implicit language scheduling.
package page
