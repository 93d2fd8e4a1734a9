// Package rpc defines the Mnemos gRPC contract: the mnemos.v1.Mnemos service,
// its request and response messages, and the client and server bindings.
//
// Messages are plain Go structs carried by a JSON codec registered under the
// "json" content subtype, so the contract needs no code generation step.
// Clients select the codec with grpc.CallContentSubtype(CodecName), usually
// as a default call option of the connection.
package rpc
