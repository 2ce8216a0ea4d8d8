// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package catalog

// defaultServices lists beauty and grooming offerings.
var defaultServices = []string{
	"hair salon", "barber", "nail salon", "spa", "beauty salon",
	"makeup artist", "braiding", "box braids", "knotless braids", "cornrows",
	"twists", "dreadlocks", "hair extensions", "weave installation", "haircut",
	"men's haircut", "fade haircut", "kids haircut", "hair styling", "blowout",
	"hair colour", "highlights", "Brazilian blowout", "Olaplex treatment", "manicure",
	"pedicure", "gel nails", "acrylic nails", "nail art", "lash extensions",
	"lash lift", "microblading", "brow lamination", "threading", "facial",
	"skin care", "chemical peel", "massage", "deep tissue massage", "Swedish massage",
	"couples massage", "hot stone massage", "waxing", "Brazilian wax", "Hollywood wax",
	"leg wax", "men's grooming", "hot shave", "beard trim", "wedding makeup",
	"tattoo removal", "balayage", "ombre", "hair color", "hair dye",
	"keratin treatment", "hair treatment", "hair transformation", "haircut and color", "haircut and style",
	"Ghana braids", "Senegalese twists", "crochet braids", "faux locs", "nail technician",
	"nail care", "nail design", "nail polish", "nail repair", "eyebrow threading",
	"eyebrow waxing", "eyebrow tinting", "eyebrow shaping", "full body massage", "sports massage",
	"prenatal massage", "reflexology", "body scrub", "body wrap", "cellulite treatment",
	"anti-aging facial", "acne treatment", "skin rejuvenation", "dermaplaning", "hydrafacial",
	"bikini wax", "underarm wax", "full leg wax", "half leg wax", "bridal hair",
	"bridal makeup", "bridal package", "wedding hair and makeup", "event makeup", "special occasion makeup",
	"prom makeup", "matric dance makeup",
}

// defaultLocations lists cities and suburbs. Order matters: the top-N
// cutoffs take a prefix of this list. Duplicates are intentional.
var defaultLocations = []string{
	// Gauteng
	"Johannesburg", "Cape Town", "Durban", "Pretoria", "Sandton", "Randburg",
	"Soweto", "Gqeberha", "Midrand", "Roodepoort", "Bloemfontein", "Rosebank",
	"Fourways", "Sea Point", "Umhlanga", "Durbanville", "Bellville", "Claremont",
	"Stellenbosch", "Paarl", "East London", "Polokwane", "Nelspruit", "Bedfordview",
	"Centurion", "Kempton Park", "Springs", "Germiston", "Benoni", "Boksburg",
	"Alberton", "Edenvale", "Vanderbijlpark", "Vereeniging", "Krugersdorp",
	"Alexandra", "Katlehong", "Tembisa", "Vosloorus", "Mamelodi", "Soshanguve",
	"Atteridgeville", "Melrose", "Hyde Park", "Bryanston", "Parktown", "Melville",
	"Greenside", "Illovo", "Houghton", "Killarney", "Norwood", "Orange Grove",
	"Auckland Park", "Braamfontein", "Newtown", "Maboneng", "Fordsburg",

	// Western Cape
	"Camps Bay", "Clifton", "Green Point", "Mouille Point", "V&A Waterfront",
	"City Bowl", "Gardens", "Tamboerskloof", "Oranjezicht", "Vredehoek",
	"Constantia", "Newlands", "Rondebosch", "Observatory", "Mowbray",
	"Pinelands", "Parow", "Goodwood", "Brackenfell", "Kraaifontein",
	"Somerset West", "Strand", "Gordon's Bay", "Hermanus", "Knysna",
	"Plettenberg Bay", "George", "Mossel Bay", "Oudtshoorn", "Worcester",
	"Robertson", "Franschhoek", "Wellington", "Tulbagh", "Ceres",
	"Langebaan", "Saldanha", "Vredenburg", "Atlantis", "Milnerton",
	"Table View", "Blouberg", "Melkbosstrand", "Hout Bay", "Noordhoek",
	"Fish Hoek", "Simon's Town", "Kalk Bay", "Muizenberg", "St James",
	"Kalk Bay", "Kommetjie", "Scarborough", "Sunset Beach", "Big Bay",

	// KwaZulu-Natal
	"Durban North", "Westville", "Ballito", "Hillcrest", "Kloof",
	"Pinetown", "New Germany", "Queensburgh", "Amanzimtoti", "Umlazi",
	"Chatsworth", "Phoenix", "Verulam", "Tongaat", "Umhlanga Rocks",
	"La Mercy", "Umdloti", "Salt Rock", "Shakaskraal", "Zimbali",
	"Pietermaritzburg", "Hilton", "Howick", "Richmond", "Greytown",
	"Scottburgh", "Port Shepstone", "Margate", "Ramsgate", "Southbroom",
	"Shelly Beach", "Uvongo", "Port Edward", "Kokstad", "Harding",
	"Underberg", "Himeville", "Nottingham Road", "Mooi River", "Estcourt",
	"Ladysmith", "Newcastle", "Vryheid", "Dundee", "Glencoe",

	// Eastern Cape
	"Port Elizabeth", "Summerstrand", "Humewood", "Richmond Hill", "Central",
	"Greenacres", "Newton Park", "Lorraine", "Walmer", "Schoenmakerskop",
	"Sardinia Bay", "Jeffreys Bay", "St Francis Bay", "Cape St Francis",
	"Port Alfred", "Kentucky-on-Sea", "Bathurst", "Grahamstown", "Makhanda",
	"Adelaide", "Fort Beaufort", "Cradock", "Graaff-Reinet", "Aberdeen",
	"Somerset East", "Jansenville", "Steytlerville", "Willowmore", "Uniondale",
	"Kareedouw", "Joubertina", "Patensie", "Hankey", "Paterson",
	"Kirkwood", "Addo", "Alexandria", "Bushmans River Mouth", "Cannon Rocks",

	// Free State
	"Bloemfontein", "Welkom", "Kroonstad", "Sasolburg", "Virginia",
	"Odendaalsrus", "Bothaville", "Parys", "Vredefort", "Koppies",
	"Heilbron", "Villiers", "Frankfort", "Reitz", "Lindley",
	"Bethlehem", "Clarens", "Fouriesburg", "Harrismith", "Phuthaditjhaba",
	"Ladybrand", "Ficksburg", "Clocolan", "Marquard", "Senekal",
	"Winburg", "Brandfort", "Theunissen", "Bultfontein", "Hoofstad",

	// Mpumalanga
	"Nelspruit", "Mbombela", "White River", "Hazyview", "Sabie",
	"Graskop", "Pilgrim's Rest", "Lydenburg", "Machadodorp", "Dullstroom",
	"Barberton", "Badplaas", "Carolina", "Ermelo", "Bethal",
	"Standerton", "Secunda", "Trichardt", "Evander", "Kinross",
	"Middelburg", "Witbank", "Emalahleni", "Kriel", "Ogies",
	"Delmas", "Bronkhorstspruit", "Belfast", "Dullstroom", "Waterval Boven",

	// Limpopo
	"Polokwane", "Pietersburg", "Seshego", "Mankweng", "Turfloop",
	"Tzaneen", "Haenertsburg", "Magoebaskloof", "Duiwelskloof", "Modjadjiskloof",
	"Phalaborwa", "Hoedspruit", "Timbavati", "Klaserie", "Orpen",
	"Louis Trichardt", "Makhado", "Musina", "Messina", "Alldays",
	"Ellisras", "Lephalale", "Mokopane", "Potgietersrus", "Modimolle",
	"Nylstroom", "Bela-Bela", "Warmbaths", "Thabazimbi", "Northam",
	"Giyani", "Groblersdal", "Marble Hall", "Roedtan", "Naboomspruit",

	// North West
	"Rustenburg", "Sun City", "Pilanesberg", "Klerksdorp", "Potchefstroom",
	"Ventersdorp", "Lichtenburg", "Coligny", "Delareyville", "Sannieshof",
	"Ottosdal", "Schweizer-Reneke", "Wolmaransstad", "Makwassie", "Leeudoringstad",
	"Stilfontein", "Orkney", "Hartbeesfontein", "Klerksdorp", "Vryburg",
	"Mafikeng", "Mmabatho", "Mahikeng", "Zeerust", "Groot Marico",
	"Brits", "Hartbeespoort", "Broederstroom", "Kosmos", "Ifafi",

	// Northern Cape
	"Kimberley", "Upington", "Kuruman", "Kathu", "Sishen",
	"Postmasburg", "Olifantshoek", "Danielskuil", "Barkly West", "Warrenton",
	"Hartswater", "Jan Kempdorp", "Vryburg", "Mafikeng", "Taung",
	"Campbell", "Griquatown", "Prieska", "Marydale", "Groblershoop",
	"Keimoes", "Kakamas", "Augrabies", "Kenhardt", "Brandvlei",
	"Calvinia", "Nieuwoudtville", "Loeriesfontein", "Williston", "Fraserburg",
	"Carnarvon", "Victoria West", "Hutchinson", "Richmond", "Hanover",
	"Colesberg", "Norvalspont", "De Aar", "Britstown", "Loxton",
	"Sutherland", "Fraserburg", "Merweville", "Beaufort West", "Laingsburg",
	"Prince Albert", "Leeu-Gamka", "Murraysburg", "Nelspoort", "Three Sisters",
}

var defaultPrefixes = []string{
	"best", "top-rated", "affordable", "cheap", "find a", "book a",
	"mobile", "last-minute", "emergency", "walk-in", "luxury", "premium",
	"professional", "experienced", "certified", "licensed", "nearby", "local",
	"recommended", "popular", "trending", "new", "established",
}

var defaultSuffixes = []string{
	"near me", "prices", "cost", "specials", "deals", "reviews",
	"open now", "for men", "for women", "for kids", "quotes", "booking",
	"appointment", "online booking", "same day", "walk in", "discount", "promotion",
	"package", "treatment", "service", "salon", "studio", "clinic",
	"spa", "shop",
}

var defaultHighValuePrefixes = []string{
	"best", "top-rated", "affordable", "cheap", "find a", "book a",
}

var defaultHighValueSuffixes = []string{
	"near me", "prices", "cost", "reviews", "open now", "booking",
}

var defaultCompetitors = []string{
	"Booksy", "Fresha", "Treatwell", "StyleSeat",
}

// defaultVariations lists curated variants per base service.
var defaultVariations = []Variation{
	{Service: "hair salon", Variants: []string{"hairdresser", "hairstylist", "hair studio", "hair salon near me"}},
	{Service: "nail salon", Variants: []string{"nail technician", "nail studio", "nail bar", "nail spa"}},
	{Service: "spa", Variants: []string{"day spa", "wellness center", "beauty spa", "relaxation spa"}},
	{Service: "barber", Variants: []string{"barbershop", "barber shop", "men's barber", "traditional barber"}},
	{Service: "massage", Variants: []string{"massage therapist", "massage therapy", "therapeutic massage"}},
	{Service: "makeup artist", Variants: []string{"makeup artist near me", "professional makeup", "bridal makeup artist"}},
	{Service: "braiding", Variants: []string{"hair braiding", "braiding salon", "braid specialist", "african hair braiding"}},
	{Service: "waxing", Variants: []string{"waxing salon", "wax specialist", "hair removal", "waxing studio"}},
	{Service: "facial", Variants: []string{"facial treatment", "facial spa", "skin facial", "deep cleansing facial"}},
	{Service: "manicure", Variants: []string{"manicure and pedicure", "nail manicure", "gel manicure", "classic manicure"}},
}
