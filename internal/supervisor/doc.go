// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

/*
Package supervisor runs the long-lived parts of Menuboard under suture v4.

The tree has two layers so that a failing background sweep never takes the
HTTP server down with it:

	RootSupervisor ("menuboard")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── JanitorService (expired sessions, stale login windows, uptime)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Supervisor events are
logged through sutureslog, which writes via the zerolog-backed slog handler
from internal/logging:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddMaintenanceService(services.NewJanitorService(interval, tasks...))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	return tree.Serve(ctx)

Cancelling ctx stops every service; ShutdownTimeout bounds how long each may
take.
*/
package supervisor
