package main

// countryTimezones maps ISO-3166 alpha-2 country codes to the IANA
// zones observed in that country, derived from the tz database's
// zone.tab listing. The first entry is the country's principal zone
// and is what resolveTimezone returns; the rest are kept for
// completeness. The ordering is load-bearing: changing a first entry
// changes what the bot answers for that country.
var countryTimezones = map[string][]string{
	"AD": {"Europe/Andorra"},
	"AE": {"Asia/Dubai"},
	"AF": {"Asia/Kabul"},
	"AG": {"America/Antigua"},
	"AL": {"Europe/Tirane"},
	"AM": {"Asia/Yerevan"},
	"AO": {"Africa/Luanda"},
	"AR": {"America/Argentina/Buenos_Aires", "America/Argentina/Cordoba", "America/Argentina/Mendoza", "America/Argentina/Ushuaia"},
	"AT": {"Europe/Vienna"},
	"AU": {"Australia/Sydney", "Australia/Melbourne", "Australia/Brisbane", "Australia/Adelaide", "Australia/Perth", "Australia/Darwin", "Australia/Hobart", "Australia/Lord_Howe"},
	"AZ": {"Asia/Baku"},
	"BA": {"Europe/Sarajevo"},
	"BB": {"America/Barbados"},
	"BD": {"Asia/Dhaka"},
	"BE": {"Europe/Brussels"},
	"BF": {"Africa/Ouagadougou"},
	"BG": {"Europe/Sofia"},
	"BH": {"Asia/Bahrain"},
	"BN": {"Asia/Brunei"},
	"BO": {"America/La_Paz"},
	"BR": {"America/Sao_Paulo", "America/Fortaleza", "America/Recife", "America/Manaus", "America/Belem", "America/Rio_Branco", "America/Noronha"},
	"BS": {"America/Nassau"},
	"BT": {"Asia/Thimphu"},
	"BW": {"Africa/Gaborone"},
	"BY": {"Europe/Minsk"},
	"BZ": {"America/Belize"},
	"CA": {"America/Toronto", "America/Vancouver", "America/Edmonton", "America/Winnipeg", "America/Regina", "America/Halifax", "America/St_Johns"},
	"CD": {"Africa/Kinshasa", "Africa/Lubumbashi"},
	"CF": {"Africa/Bangui"},
	"CG": {"Africa/Brazzaville"},
	"CH": {"Europe/Zurich"},
	"CI": {"Africa/Abidjan"},
	"CL": {"America/Santiago", "America/Punta_Arenas", "Pacific/Easter"},
	"CM": {"Africa/Douala"},
	"CN": {"Asia/Shanghai", "Asia/Urumqi"},
	"CO": {"America/Bogota"},
	"CR": {"America/Costa_Rica"},
	"CU": {"America/Havana"},
	"CY": {"Asia/Nicosia"},
	"CZ": {"Europe/Prague"},
	"DE": {"Europe/Berlin", "Europe/Busingen"},
	"DK": {"Europe/Copenhagen"},
	"DO": {"America/Santo_Domingo"},
	"DZ": {"Africa/Algiers"},
	"EC": {"America/Guayaquil", "Pacific/Galapagos"},
	"EE": {"Europe/Tallinn"},
	"EG": {"Africa/Cairo"},
	"ER": {"Africa/Asmara"},
	"ES": {"Europe/Madrid", "Africa/Ceuta", "Atlantic/Canary"},
	"ET": {"Africa/Addis_Ababa"},
	"FI": {"Europe/Helsinki"},
	"FJ": {"Pacific/Fiji"},
	"FR": {"Europe/Paris"},
	"GA": {"Africa/Libreville"},
	"GB": {"Europe/London"},
	"GE": {"Asia/Tbilisi"},
	"GH": {"Africa/Accra"},
	"GM": {"Africa/Banjul"},
	"GN": {"Africa/Conakry"},
	"GR": {"Europe/Athens"},
	"GT": {"America/Guatemala"},
	"GY": {"America/Guyana"},
	"HK": {"Asia/Hong_Kong"},
	"HN": {"America/Tegucigalpa"},
	"HR": {"Europe/Zagreb"},
	"HT": {"America/Port-au-Prince"},
	"HU": {"Europe/Budapest"},
	"ID": {"Asia/Jakarta", "Asia/Pontianak", "Asia/Makassar", "Asia/Jayapura"},
	"IE": {"Europe/Dublin"},
	"IL": {"Asia/Jerusalem"},
	"IN": {"Asia/Kolkata"},
	"IQ": {"Asia/Baghdad"},
	"IR": {"Asia/Tehran"},
	"IS": {"Atlantic/Reykjavik"},
	"IT": {"Europe/Rome"},
	"JM": {"America/Jamaica"},
	"JO": {"Asia/Amman"},
	"JP": {"Asia/Tokyo"},
	"KE": {"Africa/Nairobi"},
	"KG": {"Asia/Bishkek"},
	"KH": {"Asia/Phnom_Penh"},
	"KR": {"Asia/Seoul"},
	"KW": {"Asia/Kuwait"},
	"KZ": {"Asia/Almaty", "Asia/Aqtobe", "Asia/Atyrau", "Asia/Oral"},
	"LA": {"Asia/Vientiane"},
	"LB": {"Asia/Beirut"},
	"LK": {"Asia/Colombo"},
	"LR": {"Africa/Monrovia"},
	"LT": {"Europe/Vilnius"},
	"LU": {"Europe/Luxembourg"},
	"LV": {"Europe/Riga"},
	"LY": {"Africa/Tripoli"},
	"MA": {"Africa/Casablanca"},
	"MC": {"Europe/Monaco"},
	"MD": {"Europe/Chisinau"},
	"ME": {"Europe/Podgorica"},
	"MG": {"Indian/Antananarivo"},
	"MK": {"Europe/Skopje"},
	"ML": {"Africa/Bamako"},
	"MM": {"Asia/Yangon"},
	"MN": {"Asia/Ulaanbaatar", "Asia/Hovd"},
	"MO": {"Asia/Macau"},
	"MT": {"Europe/Malta"},
	"MU": {"Indian/Mauritius"},
	"MV": {"Indian/Maldives"},
	"MW": {"Africa/Blantyre"},
	"MX": {"America/Mexico_City", "America/Cancun", "America/Monterrey", "America/Hermosillo", "America/Tijuana"},
	"MY": {"Asia/Kuala_Lumpur", "Asia/Kuching"},
	"MZ": {"Africa/Maputo"},
	"NA": {"Africa/Windhoek"},
	"NE": {"Africa/Niamey"},
	"NG": {"Africa/Lagos"},
	"NI": {"America/Managua"},
	"NL": {"Europe/Amsterdam"},
	"NO": {"Europe/Oslo"},
	"NP": {"Asia/Kathmandu"},
	"NZ": {"Pacific/Auckland", "Pacific/Chatham"},
	"OM": {"Asia/Muscat"},
	"PA": {"America/Panama"},
	"PE": {"America/Lima"},
	"PG": {"Pacific/Port_Moresby", "Pacific/Bougainville"},
	"PH": {"Asia/Manila"},
	"PK": {"Asia/Karachi"},
	"PL": {"Europe/Warsaw"},
	"PT": {"Europe/Lisbon", "Atlantic/Madeira", "Atlantic/Azores"},
	"PY": {"America/Asuncion"},
	"QA": {"Asia/Qatar"},
	"RO": {"Europe/Bucharest"},
	"RS": {"Europe/Belgrade"},
	"RU": {"Europe/Moscow", "Europe/Kaliningrad", "Europe/Samara", "Asia/Yekaterinburg", "Asia/Omsk", "Asia/Novosibirsk", "Asia/Krasnoyarsk", "Asia/Irkutsk", "Asia/Yakutsk", "Asia/Vladivostok", "Asia/Magadan", "Asia/Kamchatka"},
	"RW": {"Africa/Kigali"},
	"SA": {"Asia/Riyadh"},
	"SD": {"Africa/Khartoum"},
	"SE": {"Europe/Stockholm"},
	"SG": {"Asia/Singapore"},
	"SI": {"Europe/Ljubljana"},
	"SK": {"Europe/Bratislava"},
	"SL": {"Africa/Freetown"},
	"SN": {"Africa/Dakar"},
	"SO": {"Africa/Mogadishu"},
	"SV": {"America/El_Salvador"},
	"SY": {"Asia/Damascus"},
	"TH": {"Asia/Bangkok"},
	"TJ": {"Asia/Dushanbe"},
	"TM": {"Asia/Ashgabat"},
	"TN": {"Africa/Tunis"},
	"TR": {"Europe/Istanbul"},
	"TT": {"America/Port_of_Spain"},
	"TW": {"Asia/Taipei"},
	"TZ": {"Africa/Dar_es_Salaam"},
	"UA": {"Europe/Kyiv"},
	"UG": {"Africa/Kampala"},
	"US": {"America/New_York", "America/Chicago", "America/Denver", "America/Phoenix", "America/Los_Angeles", "America/Anchorage", "Pacific/Honolulu"},
	"UY": {"America/Montevideo"},
	"UZ": {"Asia/Tashkent", "Asia/Samarkand"},
	"VE": {"America/Caracas"},
	"VN": {"Asia/Ho_Chi_Minh"},
	"YE": {"Asia/Aden"},
	"ZA": {"Africa/Johannesburg"},
	"ZM": {"Africa/Lusaka"},
	"ZW": {"Africa/Harare"},
}
