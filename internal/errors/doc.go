// Package errors carries coded errors through munchkin-api.
//
// Only caller mistakes become errors: an empty or malformed room id, an
// intent that cannot be decoded, an unknown intent type, invalid server
// configuration. Malformed snapshots, stale player references and declined
// confirmations are absorbed by the layers that see them and never reach
// this package.
//
// Creating errors:
//
//	err := errors.InvalidArgument("room id is required")
//	err := errors.InvalidArgumentf("unknown intent %q", name).WithIntent(name)
//
// Wrapping keeps the original code:
//
//	if err := client.Set(ctx, path, raw); err != nil {
//	    return errors.Wrapf(err, "failed to write %s", path)
//	}
//
// Transports translate with ToGRPCError, Code.HTTPStatus and ToPayload
// (the WebSocket error frame).
//
// Config validation uses the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("http_addr", cfg.HTTPAddr, vb)
//	errors.ValidateRange("grpc_port", cfg.GRPCPort, 1, 65535, vb)
//	return vb.Build()
package errors
