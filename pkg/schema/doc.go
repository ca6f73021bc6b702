// Package schema validates raw puzzle documents before they are decoded.
//
// Loaders parse JSON or YAML into map[string]any and check it against a
// Schema, so malformed input is reported field by field instead of failing on
// the first decode error:
//
//	s := schema.Schema{
//	    "starting_value": schema.Int(),
//	    "dominoes":       schema.Slice(schema.Domino()),
//	    "objective":      schema.Optional(schema.String()),
//	}
//
//	if err := schema.Validate(s, data); err != nil {
//	    for _, e := range schema.ValidationErrors(err) {
//	        // Handle each field failure
//	    }
//	}
//
// Domino checks the face values of each record against the double-12 range,
// and its failures wrap domain.ErrInvalidTile.
package schema
