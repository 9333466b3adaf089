// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, view, and form types shared across packages.

# Domain Types

  - User: id, name, color (CSS accent)
  - Country: country_code, country_name (read-only reference data)
  - VisitedCountry: user_id, country_code

# View Types

IndexPage is the payload for the main map view:

	page := models.IndexPage{
		Countries: codes,
		Total:     len(codes),
		Users:     users,
		Color:     current.Color,
	}

# Form Fields

Handlers read form-encoded bodies by the constants FieldCountry, FieldAdd,
FieldUser, FieldName and FieldColor. Submitting add=new (AddNewUser) to
POST /user renders the new-user form instead of switching users.
*/
package models
