// Package api handles incoming HTTP requests, request validation and
// response formatting. It adapts the generation service and the reddit
// proxy client to HTTP.
//
// Every JSON body produced here carries exactly one top-level key:
// "message", "rephrased" or "error".
package api
