// Package pricing prices accessory hardware for a quote.
//
// The Service interface is the only thing the editor depends on. Table is
// the stock implementation: a YAML price book mapping product type and
// accessory kind to a unit price. A default price book is embedded in the
// binary and can be replaced with LoadTable.
//
//	products:
//	  roller:
//	    winder: 30
//	    motor: 250
//	    dual: 20
//
// Prices are count times unit price. For the dual kind the count is the
// number of rows carrying a dual marker when items are supplied.
package pricing
