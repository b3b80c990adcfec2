// Package docs SEO Taxonomy Microservice API.
//
// Geographic taxonomy, canonical route and indexability engine for the
// tourism marketplace. Builds the registry of every canonical page with
// curation flags and traffic counters, resolves raw request paths to
// canonical pages or permanent redirects, and applies operator toggles.
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
