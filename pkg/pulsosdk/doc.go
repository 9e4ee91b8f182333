/*
Package pulsosdk provides a client SDK for the PULSO HORECA access service.

# Overview

The package holds the wire types shared by the server and its clients, the
APIError type used for every error response, a Client for the HTTP API, and a
Guard that keeps a permission decision current as the caller's criteria
change.

# Client

A Client carries the caller's session token and sends it as a bearer token:

	client := pulsosdk.NewClient("https://pulso.example.com", sessionToken)

	// Where should this user land?
	status, err := client.OnboardingStatus(ctx)

	// May they create checklists in this company?
	decision, err := client.CheckPermission(ctx, pulsosdk.CheckRequest{
		Permission: "checklist.create",
		EmpresaID:  empresaID,
	})

# Guard

A Guard re-evaluates whenever the criteria change and drops results from
evaluations that have been superseded:

	guard := pulsosdk.NewGuard(client, func(d pulsosdk.Decision) {
		render(d.State)
	})
	_, err := guard.Update(ctx, pulsosdk.CheckRequest{MinHierarchyLevel: 5})

Until the first evaluation finishes the state is Loading. Errors publish
Denied.

# Error Handling

Failed calls return *APIError carrying the HTTP status and the
{"error", "error_description"} body:

	var apiErr *pulsosdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == pulsosdk.ErrorCodeAccessDenied {
		// ...
	}
*/
package pulsosdk
