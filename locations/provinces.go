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


package locations

// provinces lists city slugs per province in transcription order.
// Some slugs repeat; they are kept so the counts match the worksheet.
var provinces = []Province{
	{
		Slug: "gauteng",
		Cities: []string{
			"rosebank", "melrose", "hyde-park", "bryanston", "parktown", "melville",
			"greenside", "illovo", "houghton", "killarney", "norwood", "orange-grove",
			"auckland-park", "braamfontein", "newtown", "maboneng", "fordsburg", "bedfordview",
			"boksburg", "benoni", "germiston", "springs", "alberton", "edenvale",
			"kempton-park", "vanderbijlpark", "vereeniging", "krugersdorp", "alexandra", "katlehong",
			"tembisa", "vosloorus", "mamelodi", "soshanguve", "atteridgeville", "centurion",
			"bronkhorstspruit", "cullinan", "magaliesburg", "muldersdrift", "kromdraai", "helderberg",
			"bapsfontein", "ekangala", "orange-farm", "clayville", "ga-rankuwa", "rietvallei",
			"duduza", "irene", "silverfields", "hofontein", "dunnottar", "zithobeni",
			"nigel", "reiger-park", "tokoza", "tsakane", "wattville", "luweero",
			"lenasia", "brakpan", "modderfontein", "randfontein", "westonaria", "carletonville",
			"fochville", "oberholzer",
		},
	},
	{
		Slug: "western-cape",
		Cities: []string{
			"camps-bay", "clifton", "green-point", "mouille-point", "va-waterfront", "city-bowl",
			"gardens", "tamboerskloof", "oranjezicht", "vredehoek", "constantia", "newlands",
			"rondebosch", "observatory", "mowbray", "pinelands", "parow", "goodwood",
			"brackenfell", "kraaifontein", "strand", "gordons-bay", "hermanus", "knysna",
			"plettenberg-bay", "george", "mossel-bay", "oudtshoorn", "worcester", "robertson",
			"franschhoek", "wellington", "tulbagh", "ceres", "langebaan", "saldanha",
			"vredenburg", "atlantis", "milnerton", "table-view", "blouberg", "melkbosstrand",
			"hout-bay", "noordhoek", "fish-hoek", "simons-town", "kalk-bay", "muizenberg",
			"st-james", "kommetjie", "scarborough", "sunset-beach", "big-bay", "paarl",
			"durbanville", "bellville", "claremont", "sea-point", "kenilworth", "wynberg",
			"bergvliet", "tokai", "kirstenhof", "lakeside", "steenberg",
		},
	},
	{
		Slug: "kwazulu-natal",
		Cities: []string{
			"durban-north", "westville", "ballito", "hillcrest", "kloof", "pinetown",
			"new-germany", "queensburgh", "amanzimtoti", "umlazi", "chatsworth", "phoenix",
			"verulam", "tongaat", "umhlanga-rocks", "la-mercy", "umdloti", "salt-rock",
			"shakaskraal", "zimbali", "hilton", "howick", "richmond", "greytown",
			"scottburgh", "port-shepstone", "margate", "ramsgate", "southbroom", "shelly-beach",
			"uvongo", "port-edward", "kokstad", "harding", "underberg", "himeville",
			"nottingham-road", "mooi-river", "estcourt", "ladysmith", "newcastle", "vryheid",
			"dundee", "glencoe", "richards-bay", "empangeni", "st-lucia", "umtentweni",
			"umzumbe", "izotsha", "port-shepstone", "umkomaas", "amanzimtoti", "warner-beach",
			"winklespruit",
		},
	},
	{
		Slug: "eastern-cape",
		Cities: []string{
			"port-elizabeth", "summerstrand", "humewood", "richmond-hill", "central", "greenacres",
			"newton-park", "lorraine", "walmer", "schoenmakerskop", "sardinia-bay", "jeffreys-bay",
			"st-francis-bay", "cape-st-francis", "port-alfred", "kentucky-on-sea", "bathurst", "grahamstown",
			"makhanda", "adelaide", "fort-beaufort", "cradock", "graaff-reinet", "aberdeen",
			"somerset-east", "jansenville", "steytlerville", "willowmore", "uniondale", "kareedouw",
			"joubertina", "patensie", "hankey", "paterson", "kirkwood", "addo",
			"alexandria", "bushmans-river-mouth", "cannon-rocks", "east-london", "gonubie", "chiselhurst",
			"vincent", "bonza-bay", "nahoon", "beacon-bay", "selborne", "berea",
			"quigney",
		},
	},
	{
		Slug: "free-state",
		Cities: []string{
			"bloemfontein", "welkom", "kroonstad", "sasolburg", "virginia", "odendaalsrus",
			"bothaville", "parys", "vredefort", "koppies", "heilbron", "villiers",
			"frankfort", "reitz", "lindley", "bethlehem", "clarens", "fouriesburg",
			"harrismith", "phuthaditjhaba", "ladybrand", "ficksburg", "clocolan", "marquard",
			"senekal", "winburg", "brandfort", "theunissen", "bultfontein", "hoofstad",
		},
	},
	{
		Slug: "mpumalanga",
		Cities: []string{
			"nelspruit", "mbombela", "white-river", "hazyview", "sabie", "graskop",
			"pilgrims-rest", "lydenburg", "machadodorp", "dullstroom", "barberton", "badplaas",
			"carolina", "ermelo", "bethal", "standerton", "secunda", "trichardt",
			"evander", "kinross", "middelburg", "witbank", "emalahleni", "kriel",
			"ogies", "delmas", "bronkhorstspruit", "belfast", "waterval-boven", "kaapmuiden",
		},
	},
	{
		Slug: "limpopo",
		Cities: []string{
			"polokwane", "pietersburg", "seshego", "mankweng", "turfloop", "tzaneen",
			"haenertsburg", "magoebaskloof", "duiwelskloof", "modjadjiskloof", "phalaborwa", "hoedspruit",
			"timbavati", "klaserie", "orpen", "louis-trichardt", "makhado", "musina",
			"messina", "alldays", "ellisras", "lephalale", "mokopane", "potgietersrus",
			"modimolle", "nylstroom", "bela-bela", "warmbaths", "thabazimbi", "northam",
			"giyani", "groblersdal", "marble-hall", "roedtan", "naboomspruit",
		},
	},
	{
		Slug: "north-west",
		Cities: []string{
			"rustenburg", "sun-city", "pilanesberg", "klerksdorp", "potchefstroom", "ventersdorp",
			"lichtenburg", "coligny", "delareyville", "sannieshof", "ottosdal", "schweizer-reneke",
			"wolmaransstad", "makwassie", "leeudoringstad", "stilfontein", "orkney", "hartbeesfontein",
			"vryburg", "mafikeng", "mmabatho", "mahikeng", "zeerust", "groot-marico",
			"brits", "hartbeespoort", "broederstroom", "kosmos", "ifafi", "hebron",
		},
	},
	{
		Slug: "northern-cape",
		Cities: []string{
			"kimberley", "upington", "kuruman", "kathu", "sishen", "postmasburg",
			"olifantshoek", "danielskuil", "barkly-west", "warrenton", "hartswater", "jan-kempdorp",
			"vryburg", "taung", "campbell", "griquatown", "prieska", "marydale",
			"groblershoop", "keimoes", "kakamas", "augrabies", "kenhardt", "brandvlei",
			"calvinia", "nieuwoudtville", "loeriesfontein", "williston", "fraserburg", "carnarvon",
			"victoria-west", "hutchinson", "richmond", "hanover", "colesberg", "norvalspont",
			"de-aar", "britstown", "loxton", "sutherland", "merweville", "beaufort-west",
			"laingsburg", "prince-albert", "leeu-gamka", "murraysburg", "nelspoort", "three-sisters",
		},
	},
}
