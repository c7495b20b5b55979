// Package errors provides coded errors for the pokedex-api project.
//
// Every error produced by this module carries a Code (mapped onto gRPC and HTTP
// status codes), a user-facing Message, an optional wrapped Cause and free-form
// metadata. Errors raised while talking to PokeAPI additionally carry a Failure
// kind so callers can tell a single lookup failure from a failed region batch or
// a failed evolution chain resolution.
//
// # Basic Usage
//
//	err := errors.NotFound("pokemon not found").WithMeta("id", 9999)
//
//	if err := client.GetPokemonByID(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to load pokemon").WithFailure(errors.FailureBatch)
//	}
//
// # Failure kinds
//
//   - FailureLookup: a single PokeAPI request failed (transport, status or body)
//   - FailureBatch: a region fan-out failed because one of its lookups failed
//   - FailureChain: species or evolution chain resolution failed
//   - FailureConfig: the caller asked for an unknown region or an invalid range
//
// # Layer-Specific Guidelines
//
// Client layer:
//   - Map upstream status codes onto Codes (404 -> NotFound, 429 -> ResourceExhausted)
//   - Tag every error with FailureLookup and the requested URL
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Re-tag wrapped lookup failures with FailureBatch or FailureChain
//
// Handler layer:
//   - Convert errors with ToGRPCError
package errors
