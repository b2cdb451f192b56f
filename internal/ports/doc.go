// Package ports holds the interfaces between the layers of the back office.
// Service ports (candidates, agents, clients, jobs, placements, billing,
// finance, content, dashboard) are implemented by internal/app and consumed
// by the HTTP handlers. Client ports (the company registry lookup) are
// implemented by outbound adapters and consumed by the services.
package ports
