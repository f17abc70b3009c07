package catalog

import "github.com/mcoot/geoquiz/internal/model"

// UN geoscheme regions of the world catalog, in display order
var worldRegions = []model.RegionDef{
	{
		Name:  "Africa",
		Color: "#e74c3c",
		Subregions: []model.SubregionDef{
			{Name: "Northern Africa", Members: []model.EntityID{12, 818, 434, 504, 729, 788}},
			{Name: "Western Africa", Members: []model.EntityID{204, 854, 132, 384, 270, 288, 324, 624, 430, 466, 478, 562, 566, 686, 694, 768}},
			{Name: "Eastern Africa", Members: []model.EntityID{108, 174, 262, 232, 231, 404, 450, 454, 480, 508, 646, 690, 706, 728, 800, 834, 894}},
			{Name: "Middle Africa", Members: []model.EntityID{24, 120, 140, 148, 178, 180, 226, 266, 678}},
			{Name: "Southern Africa", Members: []model.EntityID{72, 426, 516, 710, 748, 716}},
		},
	},
	{
		Name:  "Americas",
		Color: "#1abc9c",
		Subregions: []model.SubregionDef{
			{Name: "Caribbean", Members: []model.EntityID{28, 44, 52, 192, 212, 214, 308, 332, 388, 659, 662, 670, 780}},
			{Name: "Central America", Members: []model.EntityID{84, 188, 222, 320, 340, 484, 558, 591}},
			{Name: "South America", Members: []model.EntityID{32, 68, 76, 152, 170, 218, 328, 600, 604, 740, 858, 862}},
			{Name: "Northern America", Members: []model.EntityID{124, 840}},
		},
	},
	{
		Name:  "Asia",
		Color: "#3498db",
		Subregions: []model.SubregionDef{
			{Name: "Central Asia", Members: []model.EntityID{398, 417, 762, 795, 860}},
			{Name: "Eastern Asia", Members: []model.EntityID{156, 392, 408, 410, 496, 158}},
			{Name: "South-eastern Asia", Members: []model.EntityID{96, 116, 360, 418, 458, 104, 608, 702, 764, 704, 626}},
			{Name: "Southern Asia", Members: []model.EntityID{4, 50, 64, 356, 364, 462, 524, 586, 144}},
			{Name: "Western Asia", Members: []model.EntityID{51, 31, 48, 196, 268, 368, 376, 400, 414, 422, 275, 512, 634, 682, 760, 792, 784, 887}},
		},
	},
	{
		Name:  "Europe",
		Color: "#2ecc71",
		Subregions: []model.SubregionDef{
			{Name: "Eastern Europe", Members: []model.EntityID{112, 100, 203, 348, 616, 498, 642, 643, 703, 804}},
			{Name: "Northern Europe", Members: []model.EntityID{208, 233, 246, 352, 372, 428, 440, 578, 752, 826}},
			{Name: "Southern Europe", Members: []model.EntityID{8, 20, 70, 191, 300, 380, 470, 807, 499, 620, 674, 688, 705, 724, 336}},
			{Name: "Western Europe", Members: []model.EntityID{40, 56, 250, 276, 438, 442, 492, 528, 756, 383}},
		},
	},
	{
		Name:  "Oceania",
		Color: "#f39c12",
		Subregions: []model.SubregionDef{
			{Name: "Australia and New Zealand", Members: []model.EntityID{36, 554}},
			{Name: "Melanesia", Members: []model.EntityID{242, 598, 90, 548}},
			{Name: "Micronesia", Members: []model.EntityID{296, 584, 583, 520, 585}},
			{Name: "Polynesia", Members: []model.EntityID{882, 776, 798}},
		},
	},
}

// Accepted names per entity; the first is the display name.
// Spelling variants are listed even where normalization would make them redundant.
var worldAliases = map[model.EntityID][]string{
	// Africa - Northern
	12:  {"Algeria"},
	818: {"Egypt"},
	434: {"Libya"},
	504: {"Morocco"},
	729: {"Sudan"},
	788: {"Tunisia"},
	// Africa - Western
	204: {"Benin"},
	854: {"Burkina Faso"},
	132: {"Cape Verde", "Cabo Verde"},
	384: {"Ivory Coast", "Cote d'Ivoire", "Côte d'Ivoire", "Cote dIvoire"},
	270: {"Gambia", "The Gambia"},
	288: {"Ghana"},
	324: {"Guinea"},
	624: {"Guinea-Bissau", "Guinea Bissau"},
	430: {"Liberia"},
	466: {"Mali"},
	478: {"Mauritania"},
	562: {"Niger"},
	566: {"Nigeria"},
	686: {"Senegal"},
	694: {"Sierra Leone"},
	768: {"Togo"},
	// Africa - Eastern
	108: {"Burundi"},
	174: {"Comoros"},
	262: {"Djibouti"},
	232: {"Eritrea"},
	231: {"Ethiopia"},
	404: {"Kenya"},
	450: {"Madagascar"},
	454: {"Malawi"},
	480: {"Mauritius"},
	508: {"Mozambique"},
	646: {"Rwanda"},
	690: {"Seychelles"},
	706: {"Somalia"},
	728: {"South Sudan"},
	800: {"Uganda"},
	834: {"Tanzania", "United Republic of Tanzania"},
	894: {"Zambia"},
	// Africa - Middle
	24:  {"Angola"},
	120: {"Cameroon"},
	140: {"Central African Republic", "CAR"},
	148: {"Chad"},
	178: {"Republic of the Congo", "Congo Republic", "Congo-Brazzaville", "Congo Brazzaville"},
	180: {"Democratic Republic of the Congo", "DR Congo", "DRC", "Congo-Kinshasa", "Congo Kinshasa"},
	226: {"Equatorial Guinea"},
	266: {"Gabon"},
	678: {"Sao Tome and Principe", "São Tomé and Príncipe", "Sao Tome"},
	// Africa - Southern
	72:  {"Botswana"},
	426: {"Lesotho"},
	516: {"Namibia"},
	710: {"South Africa"},
	748: {"Eswatini", "Swaziland"},
	716: {"Zimbabwe"},
	// Americas - Caribbean
	52:  {"Barbados"},
	28:  {"Antigua and Barbuda", "Antigua"},
	44:  {"Bahamas", "The Bahamas"},
	192: {"Cuba"},
	212: {"Dominica"},
	214: {"Dominican Republic"},
	308: {"Grenada"},
	332: {"Haiti"},
	388: {"Jamaica"},
	659: {"Saint Kitts and Nevis", "St Kitts and Nevis", "St. Kitts and Nevis"},
	662: {"Saint Lucia", "St Lucia", "St. Lucia"},
	670: {"Saint Vincent and the Grenadines", "St Vincent", "St. Vincent and the Grenadines", "Saint Vincent"},
	780: {"Trinidad and Tobago", "Trinidad"},
	// Americas - Central
	84:  {"Belize"},
	188: {"Costa Rica"},
	222: {"El Salvador"},
	320: {"Guatemala"},
	340: {"Honduras"},
	484: {"Mexico"},
	558: {"Nicaragua"},
	591: {"Panama"},
	// Americas - South
	32:  {"Argentina"},
	68:  {"Bolivia"},
	76:  {"Brazil"},
	152: {"Chile"},
	170: {"Colombia"},
	218: {"Ecuador"},
	328: {"Guyana"},
	600: {"Paraguay"},
	604: {"Peru"},
	740: {"Suriname"},
	858: {"Uruguay"},
	862: {"Venezuela"},
	// Americas - Northern
	124: {"Canada"},
	840: {"United States", "USA", "US", "United States of America", "America"},
	// Asia - Central
	398: {"Kazakhstan"},
	417: {"Kyrgyzstan"},
	762: {"Tajikistan"},
	795: {"Turkmenistan"},
	860: {"Uzbekistan"},
	// Asia - Eastern
	156: {"China", "People's Republic of China"},
	392: {"Japan"},
	408: {"North Korea", "Democratic People's Republic of Korea", "DPRK"},
	410: {"South Korea", "Republic of Korea", "Korea"},
	496: {"Mongolia"},
	158: {"Taiwan", "Republic of China"},
	// Asia - South-eastern
	96:  {"Brunei", "Brunei Darussalam"},
	116: {"Cambodia"},
	360: {"Indonesia"},
	418: {"Laos", "Lao People's Democratic Republic"},
	458: {"Malaysia"},
	104: {"Myanmar", "Burma"},
	608: {"Philippines"},
	702: {"Singapore"},
	764: {"Thailand"},
	704: {"Vietnam", "Viet Nam"},
	626: {"Timor-Leste", "East Timor"},
	// Asia - Southern
	4:   {"Afghanistan"},
	50:  {"Bangladesh"},
	64:  {"Bhutan"},
	356: {"India"},
	364: {"Iran", "Islamic Republic of Iran"},
	462: {"Maldives"},
	524: {"Nepal"},
	586: {"Pakistan"},
	144: {"Sri Lanka"},
	// Asia - Western
	51:  {"Armenia"},
	31:  {"Azerbaijan"},
	48:  {"Bahrain"},
	196: {"Cyprus"},
	268: {"Georgia"},
	368: {"Iraq"},
	376: {"Israel"},
	400: {"Jordan"},
	414: {"Kuwait"},
	422: {"Lebanon"},
	275: {"Palestine", "State of Palestine", "Palestinian Territories"},
	512: {"Oman"},
	634: {"Qatar"},
	682: {"Saudi Arabia"},
	760: {"Syria", "Syrian Arab Republic"},
	792: {"Turkey", "Türkiye", "Turkiye"},
	784: {"United Arab Emirates", "UAE"},
	887: {"Yemen"},
	// Europe - Eastern
	112: {"Belarus"},
	100: {"Bulgaria"},
	203: {"Czech Republic", "Czechia"},
	348: {"Hungary"},
	616: {"Poland"},
	498: {"Moldova", "Republic of Moldova"},
	642: {"Romania"},
	643: {"Russia", "Russian Federation"},
	703: {"Slovakia"},
	804: {"Ukraine"},
	// Europe - Northern
	208: {"Denmark"},
	233: {"Estonia"},
	246: {"Finland"},
	352: {"Iceland"},
	372: {"Ireland"},
	428: {"Latvia"},
	440: {"Lithuania"},
	578: {"Norway"},
	752: {"Sweden"},
	826: {"United Kingdom", "UK", "Great Britain", "Britain"},
	// Europe - Southern
	8:   {"Albania"},
	20:  {"Andorra"},
	70:  {"Bosnia and Herzegovina", "Bosnia"},
	191: {"Croatia"},
	470: {"Malta"},
	300: {"Greece"},
	380: {"Italy"},
	807: {"North Macedonia", "Macedonia"},
	499: {"Montenegro"},
	620: {"Portugal"},
	674: {"San Marino"},
	688: {"Serbia"},
	705: {"Slovenia"},
	724: {"Spain"},
	336: {"Vatican City", "Holy See", "Vatican"},
	// Europe - Western
	40:  {"Austria"},
	56:  {"Belgium"},
	250: {"France"},
	276: {"Germany"},
	438: {"Liechtenstein"},
	442: {"Luxembourg"},
	492: {"Monaco"},
	528: {"Netherlands", "Holland"},
	756: {"Switzerland"},
	383: {"Kosovo"},
	// Oceania - Australia and NZ
	36:  {"Australia"},
	554: {"New Zealand"},
	// Oceania - Melanesia
	242: {"Fiji"},
	598: {"Papua New Guinea", "PNG"},
	90:  {"Solomon Islands"},
	548: {"Vanuatu"},
	// Oceania - Micronesia
	296: {"Kiribati"},
	584: {"Marshall Islands"},
	583: {"Micronesia", "Federated States of Micronesia", "FSM"},
	520: {"Nauru"},
	585: {"Palau"},
	// Oceania - Polynesia
	882: {"Samoa"},
	776: {"Tonga"},
	798: {"Tuvalu"},
}

// Entities too small to click reliably as polygons, drawn as circle markers
var worldMarkers = map[model.EntityID]model.Coordinates{
	336: {Longitude: 12.4534, Latitude: 41.9029},    // Vatican City
	492: {Longitude: 7.4167, Latitude: 43.7333},     // Monaco
	674: {Longitude: 12.4578, Latitude: 43.9424},    // San Marino
	438: {Longitude: 9.5215, Latitude: 47.1660},     // Liechtenstein
	20:  {Longitude: 1.5218, Latitude: 42.5063},     // Andorra
	48:  {Longitude: 50.5577, Latitude: 26.0667},    // Bahrain
	702: {Longitude: 103.8198, Latitude: 1.3521},    // Singapore
	480: {Longitude: 57.5522, Latitude: -20.3484},   // Mauritius
	174: {Longitude: 43.3333, Latitude: -11.6455},   // Comoros
	690: {Longitude: 55.4500, Latitude: -4.6167},    // Seychelles
	462: {Longitude: 73.5109, Latitude: 4.1755},     // Maldives
	678: {Longitude: 6.6131, Latitude: 0.1864},      // Sao Tome and Principe
	28:  {Longitude: -61.7964, Latitude: 17.0608},   // Antigua and Barbuda
	212: {Longitude: -61.3710, Latitude: 15.4150},   // Dominica
	308: {Longitude: -61.6790, Latitude: 12.1165},   // Grenada
	659: {Longitude: -62.7830, Latitude: 17.3578},   // Saint Kitts and Nevis
	662: {Longitude: -60.9789, Latitude: 13.9094},   // Saint Lucia
	670: {Longitude: -61.2872, Latitude: 12.9843},   // Saint Vincent
	296: {Longitude: 173.0000, Latitude: 1.4167},    // Kiribati
	584: {Longitude: 171.1845, Latitude: 7.1315},    // Marshall Islands
	583: {Longitude: 158.2150, Latitude: 6.8874},    // Micronesia
	520: {Longitude: 166.9315, Latitude: -0.5228},   // Nauru
	585: {Longitude: 134.4795, Latitude: 7.5150},    // Palau
	882: {Longitude: -172.1046, Latitude: -13.7590}, // Samoa
	776: {Longitude: -175.1982, Latitude: -21.1790}, // Tonga
	780: {Longitude: -61.2225, Latitude: 10.4438},   // Trinidad and Tobago
	242: {Longitude: 178.0650, Latitude: -17.7134},  // Fiji
	96:  {Longitude: 114.7277, Latitude: 4.9431},    // Brunei
	52:  {Longitude: -59.5432, Latitude: 13.1939},   // Barbados
	470: {Longitude: 14.3754, Latitude: 35.9375},    // Malta
	383: {Longitude: 20.9020, Latitude: 42.6026},    // Kosovo
	798: {Longitude: 179.1940, Latitude: -8.5199},   // Tuvalu
}
