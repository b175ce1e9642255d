// Package manifest loads route tables from YAML files.
//
// A manifest lists routes by path and refers to handlers by name:
//
//	routes:
//	  - path: /users/<id:int>
//	    methods: [GET]
//	    handler: users.show
//	  - path: ${BILLING_PREFIX:-/billing}/<account:uuid>
//	    methods: [POST]
//	    handler: billing.charge
//	    data_handler: billing.validate
//	    ssl_only: true
//
// Names are resolved against a Registry built in code, and ${VAR} or
// ${VAR:-default} references are replaced with environment values before the
// document is decoded. Write $$ for a literal dollar sign.
//
//	reg := manifest.NewRegistry[handler.HandlerFunc[*mux.Context], handler.DataHandler[*mux.Context]]().
//		Handler("users.show", showUser).
//		Handler("billing.charge", charge).
//		DataHandler("billing.validate", validateCharge)
//
//	routes, err := manifest.Load("routes.yaml", reg)
//	if err != nil {
//		return err
//	}
//	r.Include(routes)
package manifest
