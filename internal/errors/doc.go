// Package errors provides the structured errors used across rpg-sheet.
//
// Every error carries a Code, a user-facing message, an optional cause and optional
// metadata. Wrapping keeps the code of the innermost *Error so a NotFound raised by a
// repository is still a NotFound when the handler converts it:
//
//	sheet, err := repo.Get(ctx, &sheetrepo.GetInput{ID: id})
//	if err != nil {
//	    return nil, errors.Wrap(err, "failed to get sheet")
//	}
//
// Metadata rides along for logs and for gRPC clients:
//
//	return errors.InvalidArgumentf("unknown field %s", id).WithField(string(id))
//
// # Layers
//
// Engine code returns InvalidArgument for bad values and FailedPrecondition for calls
// made in the wrong state, such as loading a sheet while a batch is open. Repositories
// return NotFound and AlreadyExists and wrap driver errors with Internal. Orchestrators
// wrap with context. Handlers call ToGRPCError, which maps the code to a gRPC status and
// attaches the metadata as a google.protobuf.Struct detail; FromGRPCError reverses it.
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("owner_id", input.OwnerID, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
package errors
