// Package identity implements the SureDrive registration, login, and
// principal-management services.
//
// # Principals
//
// Three roles share one principal record: admin/general users, inspectors,
// and drivers. Each principal has exactly one role, fixed at creation.
// Inspectors require a unique username and are created pre-verified by an
// admin. Drivers register through a dedicated flow with a license number
// (stored in the national-ID field) and a unique plate number, and cannot
// log in until verified.
//
// # Login
//
//   - Login: username + password, any role.
//   - InspectorLogin: username + password, inspector role only.
//   - DriverLogin: exact {plate, name, license} triple + password, verified
//     drivers only.
//
// Every failure mode returns ErrInvalidCredentials so responses cannot
// enumerate accounts, and the missing-user paths burn a dummy bcrypt
// comparison to keep timing uniform. All paths share one token-issuance
// tail with a single service-wide TTL.
//
// # Validation
//
// Malformed input returns *ValidationError with a reason per field. Driver
// registration additionally enforces the license format (AAA00000000), the
// plate format (ABC-123DE), and the password strength policy (8+ characters
// with lower, upper, digit, and symbol).
package identity
