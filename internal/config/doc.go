// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

/*
Package config loads and validates application configuration.

Configuration is layered with Koanf v2, later layers overriding earlier ones:

 1. Defaults from defaultConfig()
 2. An optional YAML file: $CONFIG_PATH, config.yaml, config.yml or
    /etc/menuboard/config.yaml
 3. Environment variables

Only known environment variables are read; anything else in the environment
is ignored. Legacy aliases (PORT, NODE_ENV) are applied before their primary
names (HTTP_PORT, ENVIRONMENT) so the primary name wins when both are set.

Example config.yaml:

	server:
	  port: 3000
	  trust_proxy: true
	store:
	  path: /data/data.json
	menu:
	  categories: [starters, burgers, drinks]
	security:
	  session_timeout: 12h
	  login_max_attempts: 5

Secrets (SESSION_SECRET, ADMIN_PASSWORD) are normally supplied through the
environment rather than the file.
*/
package config
