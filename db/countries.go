// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import "github.com/danielhkuo/travel-tracker/models"

// Countries is the reference data loaded by Seed, keyed by ISO 3166-1 alpha-2 code.
var Countries = []models.Country{
	{Code: "AD", Name: "Andorra"},
	{Code: "AE", Name: "United Arab Emirates"},
	{Code: "AF", Name: "Afghanistan"},
	{Code: "AG", Name: "Antigua and Barbuda"},
	{Code: "AL", Name: "Albania"},
	{Code: "AM", Name: "Armenia"},
	{Code: "AO", Name: "Angola"},
	{Code: "AR", Name: "Argentina"},
	{Code: "AT", Name: "Austria"},
	{Code: "AU", Name: "Australia"},
	{Code: "AZ", Name: "Azerbaijan"},
	{Code: "BA", Name: "Bosnia and Herzegovina"},
	{Code: "BB", Name: "Barbados"},
	{Code: "BD", Name: "Bangladesh"},
	{Code: "BE", Name: "Belgium"},
	{Code: "BF", Name: "Burkina Faso"},
	{Code: "BG", Name: "Bulgaria"},
	{Code: "BH", Name: "Bahrain"},
	{Code: "BI", Name: "Burundi"},
	{Code: "BJ", Name: "Benin"},
	{Code: "BN", Name: "Brunei"},
	{Code: "BO", Name: "Bolivia"},
	{Code: "BR", Name: "Brazil"},
	{Code: "BS", Name: "Bahamas"},
	{Code: "BT", Name: "Bhutan"},
	{Code: "BW", Name: "Botswana"},
	{Code: "BY", Name: "Belarus"},
	{Code: "BZ", Name: "Belize"},
	{Code: "CA", Name: "Canada"},
	{Code: "CD", Name: "Democratic Republic of the Congo"},
	{Code: "CF", Name: "Central African Republic"},
	{Code: "CG", Name: "Congo"},
	{Code: "CH", Name: "Switzerland"},
	{Code: "CI", Name: "Cote d'Ivoire"},
	{Code: "CL", Name: "Chile"},
	{Code: "CM", Name: "Cameroon"},
	{Code: "CN", Name: "China"},
	{Code: "CO", Name: "Colombia"},
	{Code: "CR", Name: "Costa Rica"},
	{Code: "CU", Name: "Cuba"},
	{Code: "CV", Name: "Cabo Verde"},
	{Code: "CY", Name: "Cyprus"},
	{Code: "CZ", Name: "Czechia"},
	{Code: "DE", Name: "Germany"},
	{Code: "DJ", Name: "Djibouti"},
	{Code: "DK", Name: "Denmark"},
	{Code: "DM", Name: "Dominica"},
	{Code: "DO", Name: "Dominican Republic"},
	{Code: "DZ", Name: "Algeria"},
	{Code: "EC", Name: "Ecuador"},
	{Code: "EE", Name: "Estonia"},
	{Code: "EG", Name: "Egypt"},
	{Code: "EH", Name: "Western Sahara"},
	{Code: "ER", Name: "Eritrea"},
	{Code: "ES", Name: "Spain"},
	{Code: "ET", Name: "Ethiopia"},
	{Code: "FI", Name: "Finland"},
	{Code: "FJ", Name: "Fiji"},
	{Code: "FM", Name: "Micronesia"},
	{Code: "FR", Name: "France"},
	{Code: "GA", Name: "Gabon"},
	{Code: "GB", Name: "United Kingdom"},
	{Code: "GD", Name: "Grenada"},
	{Code: "GE", Name: "Georgia"},
	{Code: "GH", Name: "Ghana"},
	{Code: "GL", Name: "Greenland"},
	{Code: "GM", Name: "Gambia"},
	{Code: "GN", Name: "Guinea"},
	{Code: "GQ", Name: "Equatorial Guinea"},
	{Code: "GR", Name: "Greece"},
	{Code: "GT", Name: "Guatemala"},
	{Code: "GW", Name: "Guinea-Bissau"},
	{Code: "GY", Name: "Guyana"},
	{Code: "HN", Name: "Honduras"},
	{Code: "HR", Name: "Croatia"},
	{Code: "HT", Name: "Haiti"},
	{Code: "HU", Name: "Hungary"},
	{Code: "ID", Name: "Indonesia"},
	{Code: "IE", Name: "Ireland"},
	{Code: "IL", Name: "Israel"},
	{Code: "IN", Name: "India"},
	{Code: "IQ", Name: "Iraq"},
	{Code: "IR", Name: "Iran"},
	{Code: "IS", Name: "Iceland"},
	{Code: "IT", Name: "Italy"},
	{Code: "JM", Name: "Jamaica"},
	{Code: "JO", Name: "Jordan"},
	{Code: "JP", Name: "Japan"},
	{Code: "KE", Name: "Kenya"},
	{Code: "KG", Name: "Kyrgyzstan"},
	{Code: "KH", Name: "Cambodia"},
	{Code: "KI", Name: "Kiribati"},
	{Code: "KM", Name: "Comoros"},
	{Code: "KN", Name: "Saint Kitts and Nevis"},
	{Code: "KP", Name: "North Korea"},
	{Code: "KR", Name: "South Korea"},
	{Code: "KW", Name: "Kuwait"},
	{Code: "KZ", Name: "Kazakhstan"},
	{Code: "LA", Name: "Laos"},
	{Code: "LB", Name: "Lebanon"},
	{Code: "LC", Name: "Saint Lucia"},
	{Code: "LI", Name: "Liechtenstein"},
	{Code: "LK", Name: "Sri Lanka"},
	{Code: "LR", Name: "Liberia"},
	{Code: "LS", Name: "Lesotho"},
	{Code: "LT", Name: "Lithuania"},
	{Code: "LU", Name: "Luxembourg"},
	{Code: "LV", Name: "Latvia"},
	{Code: "LY", Name: "Libya"},
	{Code: "MA", Name: "Morocco"},
	{Code: "MC", Name: "Monaco"},
	{Code: "MD", Name: "Moldova"},
	{Code: "ME", Name: "Montenegro"},
	{Code: "MG", Name: "Madagascar"},
	{Code: "MH", Name: "Marshall Islands"},
	{Code: "MK", Name: "North Macedonia"},
	{Code: "ML", Name: "Mali"},
	{Code: "MM", Name: "Myanmar"},
	{Code: "MN", Name: "Mongolia"},
	{Code: "MR", Name: "Mauritania"},
	{Code: "MT", Name: "Malta"},
	{Code: "MU", Name: "Mauritius"},
	{Code: "MV", Name: "Maldives"},
	{Code: "MW", Name: "Malawi"},
	{Code: "MX", Name: "Mexico"},
	{Code: "MY", Name: "Malaysia"},
	{Code: "MZ", Name: "Mozambique"},
	{Code: "NA", Name: "Namibia"},
	{Code: "NE", Name: "Niger"},
	{Code: "NG", Name: "Nigeria"},
	{Code: "NI", Name: "Nicaragua"},
	{Code: "NL", Name: "Netherlands"},
	{Code: "NO", Name: "Norway"},
	{Code: "NP", Name: "Nepal"},
	{Code: "NR", Name: "Nauru"},
	{Code: "NZ", Name: "New Zealand"},
	{Code: "OM", Name: "Oman"},
	{Code: "PA", Name: "Panama"},
	{Code: "PE", Name: "Peru"},
	{Code: "PG", Name: "Papua New Guinea"},
	{Code: "PH", Name: "Philippines"},
	{Code: "PK", Name: "Pakistan"},
	{Code: "PL", Name: "Poland"},
	{Code: "PR", Name: "Puerto Rico"},
	{Code: "PS", Name: "Palestine"},
	{Code: "PT", Name: "Portugal"},
	{Code: "PW", Name: "Palau"},
	{Code: "PY", Name: "Paraguay"},
	{Code: "QA", Name: "Qatar"},
	{Code: "RO", Name: "Romania"},
	{Code: "RS", Name: "Serbia"},
	{Code: "RU", Name: "Russia"},
	{Code: "RW", Name: "Rwanda"},
	{Code: "SA", Name: "Saudi Arabia"},
	{Code: "SB", Name: "Solomon Islands"},
	{Code: "SC", Name: "Seychelles"},
	{Code: "SD", Name: "Sudan"},
	{Code: "SE", Name: "Sweden"},
	{Code: "SG", Name: "Singapore"},
	{Code: "SI", Name: "Slovenia"},
	{Code: "SK", Name: "Slovakia"},
	{Code: "SL", Name: "Sierra Leone"},
	{Code: "SM", Name: "San Marino"},
	{Code: "SN", Name: "Senegal"},
	{Code: "SO", Name: "Somalia"},
	{Code: "SR", Name: "Suriname"},
	{Code: "SS", Name: "South Sudan"},
	{Code: "ST", Name: "Sao Tome and Principe"},
	{Code: "SV", Name: "El Salvador"},
	{Code: "SY", Name: "Syria"},
	{Code: "SZ", Name: "Eswatini"},
	{Code: "TD", Name: "Chad"},
	{Code: "TG", Name: "Togo"},
	{Code: "TH", Name: "Thailand"},
	{Code: "TJ", Name: "Tajikistan"},
	{Code: "TL", Name: "Timor-Leste"},
	{Code: "TM", Name: "Turkmenistan"},
	{Code: "TN", Name: "Tunisia"},
	{Code: "TO", Name: "Tonga"},
	{Code: "TR", Name: "Turkey"},
	{Code: "TT", Name: "Trinidad and Tobago"},
	{Code: "TV", Name: "Tuvalu"},
	{Code: "TW", Name: "Taiwan"},
	{Code: "TZ", Name: "Tanzania"},
	{Code: "UA", Name: "Ukraine"},
	{Code: "UG", Name: "Uganda"},
	{Code: "US", Name: "United States of America"},
	{Code: "UY", Name: "Uruguay"},
	{Code: "UZ", Name: "Uzbekistan"},
	{Code: "VA", Name: "Vatican City"},
	{Code: "VC", Name: "Saint Vincent and the Grenadines"},
	{Code: "VE", Name: "Venezuela"},
	{Code: "VN", Name: "Vietnam"},
	{Code: "VU", Name: "Vanuatu"},
	{Code: "WS", Name: "Samoa"},
	{Code: "YE", Name: "Yemen"},
	{Code: "ZA", Name: "South Africa"},
	{Code: "ZM", Name: "Zambia"},
	{Code: "ZW", Name: "Zimbabwe"},
}
