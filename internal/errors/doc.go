// Package errors provides the structured error type used across rpg-pantheon.
//
// Errors carry a Code, a caller-facing message, an optional cause and
// metadata. Codes map one-to-one onto gRPC status codes so handlers can
// translate with ToGRPCError.
//
// Favor operations distinguish three failure classes:
//
//   - refusals (no active patron, ineligible join) are not errors at all and
//     are reported through output flags;
//   - bad requests at the service edge are InvalidArgument;
//   - broken invariants are programming errors and panic with an Invariant
//     error, see Assert.
//
// Creating and wrapping:
//
//	err := errors.NotFoundf("favor state %s not found", sessionID)
//	return errors.Wrap(err, "failed to load session")
//
// Config validation:
//
//	vb := errors.NewValidationBuilder()
//	if c.World == nil {
//	    vb.RequiredField("World")
//	}
//	return vb.Build()
package errors
