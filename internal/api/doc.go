// Package api exposes the SureDrive identity service over HTTP.
//
// # Routes
//
// Public endpoints:
//
//	POST /api/auth/register         general registration
//	POST /api/auth/login            username/password login
//	POST /api/auth/inspector-login  inspector-only login
//	POST /api/auth/driver-login     driver login by plate, name, and license
//	POST /api/auth/driver-register  driver registration with format validation
//	GET  /api/health                liveness probe
//
// Authenticated endpoints (bearer JWT):
//
//	GET    /api/me                  the calling principal
//	POST   /api/admin/inspectors    create an inspector (admin)
//	GET    /api/users               list principals (admin)
//	GET    /api/users/{id}          fetch a principal
//	PUT    /api/users/{id}          update profile fields
//	DELETE /api/users/{id}          remove a principal (admin)
//	PUT    /api/users/{id}/verify   verify a principal (admin or inspector)
//
// # Response Envelope
//
// Every response is JSON with a "success" flag:
//
//	{"success": true, "message": "...", "data": {...}}
//	{"success": false, "error": "...", "fields": {...}}
//
// Validation failures are 400 with a per-field "fields" map. Login failures
// are a uniform 401. Uniqueness conflicts are 409. Unexpected errors are an
// opaque 500; the cause is logged server-side only.
package api
