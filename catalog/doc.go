// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog serves the survey question schema.

The catalog is read-only configuration: a JSON or YAML file supplied by
the deployment, keyed by user type. YAML catalogs are converted to JSON
before serving. When the file is missing or unparseable the built-in
default schema is served instead, so GET /questions.json never errors.
*/
package catalog
