// Package services contains the business logic sitting between the HTTP
// controllers and the repositories.
//
// Services defined in this package:
// - AuthService: registration, login and token issuance
// - UserService: profile reads and partial profile updates
// - InternshipService: listing CRUD, owner listings and filtered search
// - ApplicationService: application CRUD and the status lifecycle
package services
