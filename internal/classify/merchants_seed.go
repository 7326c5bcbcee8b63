package classify

// merchantSeed is the built-in merchant-to-category table the index starts
// from. Keys are already lower-cased. Runtime-learned entries layer on top.
var merchantSeed = map[string]string{

	// ========== GROCERY STORES ==========
	"safeway": "groceries",
	"pcc": "groceries",
	"amazon fresh": "groceries",
	"whole foods": "groceries",
	"trader joe": "groceries",
	"kroger": "groceries",
	"publix": "groceries",
	"wegmans": "groceries",
	"costco": "groceries",
	"costco whse": "groceries",
	"costco warehouse": "groceries",
	"costcowhse": "groceries",
	"costcowarehouse": "groceries",
	"walmart": "groceries",
	"sam's club": "groceries",
	"bj's wholesale club": "groceries",
	"target": "groceries",
	"lidl": "groceries",
	"h-e-b": "groceries",
	"heb": "groceries",
	"stop and shop": "groceries",
	"giant": "groceries",
	"sprouts": "groceries",
	"sprouts farmers market": "groceries",
	"aldi": "groceries",
	"winco": "groceries",
	"meijer": "groceries",
	"hy-vee": "groceries",
	"hyvee": "groceries",
	"shoprite": "groceries",
	"ralph's": "groceries",
	"fredmeyer": "groceries",
	"food lion": "groceries",
	"giant food": "groceries",
	"the giant company": "groceries",
	"martin's food markets": "groceries",
	"hannaford": "groceries",
	"stop & shop": "groceries",
	"ralphs": "groceries",
	"smith's food and drug": "groceries",
	"king soopers": "groceries",
	"fred meyer": "groceries",
	"harris teeter": "groceries",
	"pick 'n save": "groceries",
	"qfc": "groceries",
	"dillons": "groceries",
	"city market": "groceries",
	"baker's": "groceries",
	"gerbes": "groceries",
	"jay c food store": "groceries",
	"metro market": "groceries",
	"pay-less super markets": "groceries",
	"vons": "groceries",
	"jewel-osco": "groceries",
	"shaw's": "groceries",
	"acme": "groceries",
	"tom thumb": "groceries",
	"randalls": "groceries",
	"united supermarkets (including market street, amigos, and united express formats)": "groceries",
	"pavilions": "groceries",
	"star market": "groceries",
	"jagalchi": "groceries",
	"zion market": "groceries",
	"cu": "groceries",
	"patel brothers": "groceries",
	"dk market": "groceries",
	"apna bazar": "groceries",
	"indian co": "groceries",
	"online specialty stores": "groceries",
	"ishopindian": "groceries",
	"desi basket": "groceries",
	"holyland market": "groceries",
	"glatt mart": "groceries",
	"shufersal": "groceries",
	"india cash and carry": "groceries",
	"s-mart": "groceries",
	"asian family market": "groceries",
	"fou lee market & deli": "groceries",
	"india supermarket": "groceries",
	"india metro hypermarket": "groceries",
	"international deli": "groceries",
	"oskoo persian & mediterranean market": "groceries",
	"la superior": "groceries",
	"rose persian market & halal butchery": "groceries",
	"the souk": "groceries",
	"big john’s pfi": "groceries",
	"haggen": "groceries",
	"carrs": "groceries",
	"kings food markets": "groceries",
	"balducci's food lovers market": "groceries",
	"99 ranch market": "groceries",
	"h mart": "groceries",
	"mitsuwa marketplace": "groceries",
	"t&t supermarket": "groceries",
	"weee": "groceries",
	"mega mart": "groceries",
	"dollar tree": "groceries",
	"dollar general": "groceries",
	"dollarama": "groceries",
	"family dollar": "groceries",
	"five below": "groceries",
	"thrive market": "groceries",
	"giant eagle": "groceries",
	"erwan's market": "groceries",
	"sprouts market": "groceries",
	"erewhon market": "groceries",
	"market of choice": "groceries",
	"cumberland farms": "groceries",
	"tops friendly market": "groceries",
	"big y": "groceries",
	"food 4 less": "groceries",
	"foods co.": "groceries",
	"mariano's": "groceries",
	"dillon's": "groceries",
	"gourmet garage": "groceries",

	// ========== FOOD CHAINS / DINING ==========
	"subway": "dining",
	"starbucks": "dining",
	"starbucks store": "dining",
	"starbucks coffee": "dining",
	"chipotle": "dining",
	"chipotle mex gr": "dining",
	"chipotle mexican grill": "dining",
	"hoffman": "dining",
	"hoffmans": "dining",
	"hoffman's": "dining",
	"hoffman bakery": "dining",
	"canam pizza": "dining",
	"canam": "dining",
	"mcdonalds": "dining",
	"mcdonald's": "dining",
	"burger king": "dining",
	"taco bell": "dining",
	"pizza hut": "dining",
	"dominos": "dining",
	"domino's": "dining",
	"panera": "dining",
	"panera bread": "dining",
	"wendy's": "dining",
	"wendys": "dining",
	"kfc": "dining",
	"kentucky fried chicken": "dining",
	"dunkin": "dining",
	"dunkin donuts": "dining",
	"dunkin' donuts": "dining",
	"dairy queen": "dining",
	"dq": "dining",
	"papa john's": "dining",
	"papa johns": "dining",
	"little caesars": "dining",
	"olive garden": "dining",
	"red lobster": "dining",
	"applebees": "dining",
	"applebee's": "dining",
	"outback": "dining",
	"outback steakhouse": "dining",
	"chili's": "dining",
	"chilis": "dining",
	"texas roadhouse": "dining",
	"ihop": "dining",
	"denny's": "dining",
	"dennys": "dining",
	"waffle house": "dining",
	"five guys": "dining",
	"shake shack": "dining",
	"in-n-out": "dining",
	"in n out": "dining",
	"whataburger": "dining",
	"culver's": "dining",
	"culvers": "dining",
	"sonic": "dining",
	"sonic drive-in": "dining",
	"arby's": "dining",
	"arbys": "dining",
	"jack in the box": "dining",
	"white castle": "dining",
	"qdoba": "dining",
	"habit grill": "dining",
	"moe's": "dining",
	"moes": "dining",
	"baja fresh": "dining",
	"del taco": "dining",
	"carl's jr": "dining",
	"carls jr": "dining",
	"hardee's": "dining",
	"hardees": "dining",
	"panda express": "dining",
	"pf chang's": "dining",
	"pf changs": "dining",
	"p.f. chang's": "dining",
	"cheesecake factory": "dining",
	"red robin": "dining",
	"buffalo wild wings": "dining",
	"bww": "dining",
	"wingstop": "dining",
	"zaxby's": "dining",
	"zaxbys": "dining",
	"daeho": "dining",
	"tutta bella": "dining",
	"tuttabella": "dining",
	"simply indian restaur": "dining",
	"simply indian restaurant": "dining",
	"simplyindian restaur": "dining",
	"simplyindian restaurant": "dining",
	"skills rainbow room": "dining",
	"skillsrainbow room": "dining",
	"kyurmaen": "dining",
	"kyurmaen ramen": "dining",
	"deep dive": "dining",
	"deepdive": "dining",
	"messina": "dining",
	"supreme dumplings": "dining",
	"supremedumplings": "dining",
	"cucina venti": "dining",
	"cucinaventi": "dining",
	"desi dhaba": "dining",
	"desidhaba": "dining",
	"medocinofarms": "dining",
	"medocino farms": "dining",
	"laughing monk brewing": "dining",
	"laughingmonk brewing": "dining",
	"laughing monk": "dining",
	"laughingmonk": "dining",
	"indian sizzler": "dining",
	"indiansizzler": "dining",
	"shana thai": "dining",
	"shanathai": "dining",
	"tpd": "dining",
	"paypams": "dining",
	"pay pams": "dining",
	"burger and kabob hut": "dining",
	"burgerandkabobhut": "dining",
	"kabob hut": "dining",
	"kabobhut": "dining",
	"insomnia cookies": "dining",
	"insomniacookies": "dining",
	"insomnia cookie": "dining",
	"banaras": "dining",
	"banaras restaurant": "dining",
	"banarasrestaurant": "dining",
	"resy": "dining",
	"maxmillen": "dining",
	"maxmillian": "dining",
	"maximilian": "dining",

	// ========== RETAIL CHAINS ==========
	"macy's": "shopping",
	"macys": "shopping",
	"nordstrom": "shopping",
	"nordstrom rack": "shopping",
	"best buy": "shopping",
	"bestbuy": "shopping",
	"ebay": "shopping",
	"kohl's": "shopping",
	"kohls": "shopping",
	"j.c. penney": "shopping",
	"jcpenney": "shopping",
	"jc penney": "shopping",
	"sears": "shopping",
	"old navy": "shopping",
	"gap": "shopping",
	"banana republic": "shopping",
	"american eagle": "shopping",
	"ae": "shopping",
	"h&m": "shopping",
	"hm": "shopping",
	"zara": "shopping",
	"forever 21": "shopping",
	"forever21": "shopping",
	"ulta": "shopping",
	"ulta beauty": "shopping",
	"sephora": "shopping",
	"bed bath & beyond": "shopping",
	"bed bath and beyond": "shopping",
	"bbb": "shopping",
	"tj maxx": "shopping",
	"tjmaxx": "shopping",
	"marshalls": "shopping",
	"ross": "shopping",
	"ross dress for less": "shopping",
	"burlington": "shopping",
	"burlington coat factory": "shopping",
	"dsw": "shopping",
	"designer shoe warehouse": "shopping",
	"foot locker": "shopping",
	"finish line": "shopping",
	"dick's sporting goods": "shopping",
	"dicks": "shopping",
	"dicks sporting goods": "shopping",
	"academy sports": "shopping",
	"bass pro shops": "shopping",
	"cabela's": "shopping",
	"cabelas": "shopping",
	"gamestop": "shopping",
	"game stop": "shopping",
	"barnes & noble": "shopping",
	"barnes and noble": "shopping",
	"books-a-million": "shopping",
	"books a million": "shopping",
	"michaels": "shopping",
	"michael's": "shopping",
	"joann": "shopping",
	"jo-ann": "shopping",
	"joann fabrics": "shopping",
	"hobby lobby": "shopping",
	"pier 1": "shopping",
	"pier 1 imports": "shopping",
	"world market": "shopping",
	"cost plus world market": "shopping",

	// ========== PHONE PROVIDERS ==========
	"verizon": "utilities",
	"verizon wireless": "utilities",
	"at and t": "utilities",
	"xfinity mobile": "utilities",
	"xfinitymobile": "utilities",
	"t-mobile": "utilities",
	"tmobile": "utilities",
	"t mobile": "utilities",
	"sprint": "utilities",
	"us cellular": "utilities",
	"uscellular": "utilities",
	"cricket": "utilities",
	"cricket wireless": "utilities",
	"boost mobile": "utilities",
	"metropcs": "utilities",
	"metro pcs": "utilities",
	"mint mobile": "utilities",
	"google fi": "utilities",
	"visible": "utilities",
	"straight talk": "utilities",

	// ========== UTILITY PROVIDERS (Water, Electricity, Gas, Cable) ==========
	"puget sound energy": "utilities",
	"pse": "utilities",
	"pacific power": "utilities",
	"portland general electric": "utilities",
	"southern california edison": "utilities",
	"sce": "utilities",
	"pg&e": "utilities",
	"pge": "utilities",
	"pacific gas and electric": "utilities",
	"san diego gas & electric": "utilities",
	"sdge": "utilities",
	"duke energy": "utilities",
	"dominion energy": "utilities",
	"con edison": "utilities",
	"coned": "utilities",
	"consolidated edison": "utilities",
	"national grid": "utilities",
	"exelon": "utilities",
	"firstenergy": "utilities",
	"first energy": "utilities",
	"aep": "utilities",
	"american electric power": "utilities",
	"southern company": "utilities",
	"xcel energy": "utilities",
	"centerpoint energy": "utilities",
	"centerpoint": "utilities",
	"entergy": "utilities",
	"aes": "utilities",
	"aes corporation": "utilities",
	"city of bellevue": "utilities",
	"city of seattle": "utilities",
	"seattle public utilities": "utilities",
	"spu": "utilities",
	"american water": "utilities",
	"california water service": "utilities",
	"suez water": "utilities",
	"aqua america": "utilities",
	"xfinity": "utilities",
	"spectrum": "utilities",
	"charter": "utilities",
	"charter spectrum": "utilities",
	"cox": "utilities",
	"cox communications": "utilities",
	"optimum": "utilities",
	"altice": "utilities",
	"frontier communications": "utilities",
	"centurylink": "utilities",
	"century link": "utilities",
	"windstream": "utilities",
	"suddenlink": "utilities",
	"mediacom": "utilities",
	"dish": "utilities",
	"dish network": "utilities",
	"directv": "utilities",
	"direct tv": "utilities",
	"att u-verse": "utilities",
	"att uverse": "utilities",
	"fios": "utilities",
	"verizon fios": "utilities",

	// ========== ENTERTAINMENT (Streaming Services) ==========
	"xfinity tv": "entertainment",
	"xfinitytv": "entertainment",
	"hulu": "entertainment",
	"huluplus": "entertainment",
	"hulu plus": "entertainment",
	"disney+": "entertainment",
	"disney plus": "entertainment",
	"amazon prime": "entertainment",
	"prime video": "entertainment",
	"spotify": "entertainment",
	"apple music": "entertainment",
	"youtube premium": "entertainment",
	"youtube tv": "entertainment",
	"peacock": "entertainment",
	"nbc peacock": "entertainment",
	"paramount+": "entertainment",
	"paramount plus": "entertainment",
	"hbo max": "entertainment",
	"max": "entertainment",
	"hbo": "entertainment",
	"showtime": "entertainment",
	"starz": "entertainment",
	"crunchyroll": "entertainment",
	"funimation": "entertainment",

	// ========== SUBSCRIPTIONS (Software/Non-Entertainment) ==========
	"adobe creative cloud": "subscriptions",
	"microsoft 365": "subscriptions",
	"office 365": "subscriptions",
	"dropbox": "subscriptions",
	"icloud": "subscriptions",
	"google drive": "subscriptions",
	"google one": "subscriptions",
	"audible": "subscriptions",
	"kindle unlimited": "subscriptions",
	"scribd": "subscriptions",
	"linkedin premium": "subscriptions",
	"grammarly": "subscriptions",
	"nordvpn": "subscriptions",
	"expressvpn": "subscriptions",
	"surfshark": "subscriptions",
	"github pro": "subscriptions",
	"canva": "subscriptions",
	"canva pro": "subscriptions",

	// ========== INSURANCE PROVIDERS ==========
	"geico": "insurance",
	"state farm": "insurance",
	"progressive": "insurance",
	"allstate": "insurance",
	"farmers": "insurance",
	"farmers insurance": "insurance",
	"liberty mutual": "insurance",
	"nationwide": "insurance",
	"travelers": "insurance",
	"travelers insurance": "insurance",
	"american family": "insurance",
	"american family insurance": "insurance",
	"amfam": "insurance",
	"erie insurance": "insurance",
	"erie": "insurance",
	"metlife": "insurance",
	"met life": "insurance",
	"aarp": "insurance",
	"aarp insurance": "insurance",
	"the hartford": "insurance",
	"hartford": "insurance",
	"esurance": "insurance",
	"safeco": "insurance",
	"safeco insurance": "insurance",
	"state farm home": "insurance",
	"allstate home": "insurance",
	"farmers home": "insurance",
	"usaa home": "insurance",
	"northwestern mutual": "insurance",
	"new york life": "insurance",
	"massmutual": "insurance",
	"mass mutual": "insurance",
	"prudential": "insurance",
	"prudential financial": "insurance",
	"aflac": "insurance",
	"aflac insurance": "insurance",
	"petplan": "insurance",
	"pet plan": "insurance",
	"healthy paws": "insurance",
	"trupanion": "insurance",
	"embrace": "insurance",
	"embrace pet insurance": "insurance",
	"nationwide pet": "insurance",
	"pets best": "insurance",
	"petsbest": "insurance",
	"figo": "insurance",
	"figo pet insurance": "insurance",
	"blue cross": "insurance",
	"blue cross blue shield": "insurance",
	"bcbs": "insurance",
	"aetna": "insurance",
	"cigna": "insurance",
	"united healthcare": "insurance",
	"humana": "insurance",
	"kaiser permanente": "insurance",
	"kaiser": "insurance",
	"anthem": "insurance",
	"anthem blue cross": "insurance",

	// ========== TRAVEL (Airlines, Hotels, Airport Lounges) ==========
	"centurion lounge": "travel",
	"centurionlounge": "travel",
	"axp centurion": "travel",
	"american express centurion": "travel",
	"amex centurion": "travel",
	"priority pass": "travel",
	"prioritypass": "travel",
	"admirals club": "travel",
	"admiralsclub": "travel",
	"delta sky club": "travel",
	"deltaskyclub": "travel",
	"united club": "travel",
	"unitedclub": "travel",
	"american express lounge": "travel",
	"amex lounge": "travel",
	"plaza premium lounge": "travel",
	"plazapremiumlounge": "travel",
	"airport lounge": "travel",
	"airportlounge": "travel",
	"encalm lounge": "travel",
	"encalmlounge": "travel",
	"encalm": "travel",
	"delta": "travel",
	"united": "travel",
	"american airlines": "travel",
	"americanairlines": "travel",
	"southwest": "travel",
	"jetblue": "travel",
	"alaska": "travel",
	"spirit": "travel",
	"frontier": "travel",
	"allegiant": "travel",
	"hawaiian": "travel",
	"airline": "travel",
	"airlines": "travel",
	"marriott": "travel",
	"hilton": "travel",
	"hyatt": "travel",
	"holiday inn": "travel",
	"holidayinn": "travel",
	"airbnb": "travel",
	"booking.com": "travel",
	"expedia": "travel",
	"travelocity": "travel",
	"priceline": "travel",
	"hotel": "travel",
	"motel": "travel",
	"resort": "travel",
	"inn": "travel",

	// ========== ELECTRONICS & AI PROVIDERS ==========
	"samsung": "tech",
	"lg": "tech",
	"sony": "tech",
	"panasonic": "tech",
	"toshiba": "tech",
	"hp": "tech",
	"hewlett packard": "tech",
	"dell": "tech",
	"lenovo": "tech",
	"asus": "tech",
	"acer": "tech",
	"msi": "tech",
	"nvidia": "tech",
	"nvidia corporation": "tech",
	"amd": "tech",
	"advanced micro devices": "tech",
	"intel": "tech",
	"intel corporation": "tech",
	"qualcomm": "tech",
	"broadcom": "tech",
	"cisco": "tech",
	"cisco systems": "tech",
	"ibm": "tech",
	"international business machines": "tech",
	"oracle": "tech",
	"adobe": "tech",
	"adobe systems": "tech",
	"openai": "tech",
	"open ai": "tech",
	"anthropic": "tech",
	"anthropic ai": "tech",
	"claude": "tech",
	"chatgpt": "tech",
	"chat gpt": "tech",
	"cohere": "tech",
	"hugging face": "tech",
	"huggingface": "tech",
	"stability ai": "tech",
	"stability": "tech",
	"midjourney": "tech",
	"replicate": "tech",
	"together ai": "tech",
	"together": "tech",
	"perplexity": "tech",
	"cursor": "tech",
	"cursor ai": "tech",
	"cursor, ai": "tech",
	"cursor ai powered ide": "tech",

	// ========== INTERNET SERVICES / COMPANIES ==========
	"google": "tech",
	"alphabet": "tech",
	"microsoft": "tech",
	"apple": "tech",
	"amazon": "tech",
	"amazon web services": "tech",
	"aws": "tech",
	"meta": "tech",
	"facebook": "tech",
	"instagram": "tech",
	"twitter": "tech",
	"x": "tech",
	"linkedin": "tech",
	"snapchat": "tech",
	"snap": "tech",
	"tiktok": "tech",
	"reddit": "tech",
	"discord": "tech",
	"slack": "tech",
	"zoom": "tech",
	"salesforce": "tech",
	"shopify": "tech",
	"stripe": "tech",
	"paypal": "tech",
	"square": "tech",
	"twilio": "tech",
	"cloudflare": "tech",
	"akamai": "tech",
	"fastly": "tech",
	"datadog": "tech",
	"splunk": "tech",
	"snowflake": "tech",
	"databricks": "tech",
	"mongodb": "tech",
	"redis": "tech",
	"elastic": "tech",
	"elasticsearch": "tech",
	"github": "tech",

	// ========== HOME IMPROVEMENT PROVIDERS ==========
	"home depot": "home improvement",
	"homedepot": "home improvement",
	"lowes": "home improvement",
	"lowes home improvement": "home improvement",
	"menards": "home improvement",
	"ace hardware": "home improvement",
	"ace": "home improvement",
	"true value": "home improvement",
	"truevalue": "home improvement",
	"harbor freight": "home improvement",
	"harbor freight tools": "home improvement",
	"northern tool": "home improvement",
	"northern tool & equipment": "home improvement",
	"tractor supply": "home improvement",
	"tractor supply company": "home improvement",
	"sherwin williams": "home improvement",
	"benjamin moore": "home improvement",
	"behr": "home improvement",
	"valspar": "home improvement",
	"ppg": "home improvement",
	"ppg paints": "home improvement",

	// ========== SERVICE PROVIDERS ==========

	// ========== TRANSPORTATION SERVICES ==========
	"uber": "transportation",
	"lyft": "transportation",
	"wsdot": "transportation",
	"washington state dot": "transportation",
	"washington state department of transportation": "transportation",
	"goodtogo": "transportation",
	"good to go": "transportation",
	"good-to-go": "transportation",
	"caltrans": "transportation",
	"california dot": "transportation",
	"fastrak": "transportation",
	"ez pass": "transportation",
	"ezpass": "transportation",
	"e-zpass": "transportation",
	"nysdot": "transportation",
	"new york state dot": "transportation",
	"new york thruway": "transportation",
	"txdot": "transportation",
	"texas dot": "transportation",
	"ez tag": "transportation",
	"txtag": "transportation",
	"fdot": "transportation",
	"florida dot": "transportation",
	"sunpass": "transportation",
	"epass": "transportation",
	"idot": "transportation",
	"illinois dot": "transportation",
	"ipass": "transportation",
	"massdot": "transportation",
	"massachusetts dot": "transportation",
	"penn dot": "transportation",
	"penndot": "transportation",
	"pennsylvania dot": "transportation",
	"njdot": "transportation",
	"new jersey dot": "transportation",
	"garden state parkway": "transportation",
	"new jersey turnpike": "transportation",
	"mdot": "transportation",
	"maryland dot": "transportation",
	"vdot": "transportation",
	"virginia dot": "transportation",
	"amex airlines fee reimbursement": "transportation",
	"amexairlinesfeereimbursement": "transportation",
	"eractoll": "transportation",
	"era toll": "transportation",
	"hona ctr": "transportation",
	"honactr": "transportation",
	"hona car service": "transportation",
	"honacarservice": "transportation",
	"doordash": "dining",
	"door dash": "dining",
	"grubhub": "dining",
	"grub hub": "dining",
	"ubereats": "dining",
	"uber eats": "dining",
	"postmates": "dining",
	"instacart": "groceries",
	"shipt": "groceries",
	"taskrabbit": "service",
	"task rabbit": "service",
	"thumbtack": "service",
	"angie's list": "service",
	"angies list": "service",
	"homeadvisor": "service",
	"home advisor": "service",
	"handy": "service",
	"care.com": "service",
	"carecom": "service",

	// ========== LOAN PROVIDERS ==========
	"sofi loans": "payment",
	"lendingclub": "payment",
	"lending club": "payment",
	"prosper": "payment",
	"prosper marketplace": "payment",
	"upstart": "payment",
	"lightstream": "payment",
	"lightstream loans": "payment",
	"discover personal loans": "payment",
	"mariner finance": "payment",
	"one main financial": "payment",
	"onemain": "payment",
	"springleaf": "payment",
	"aventium": "payment",
	"navient": "payment",
	"nelnet": "payment",
	"great lakes": "payment",
	"great lakes educational": "payment",
	"fedloan": "payment",
	"fedloan servicing": "payment",
	"mohela": "payment",
	"aidvantage": "payment",
	"edfinancial": "payment",
	"ed financial": "payment",

	// ========== CREDIT PROVIDERS ==========
	"discover": "payment",
	"discover card": "payment",
	"mastercard": "payment",
	"visa": "payment",
	"citi credit": "payment",
	"chase credit": "payment",
	"wf credit": "payment",
	"boa": "payment",

	// ========== BANK PROVIDERS ==========
	"chase": "transfer",
	"chase bank": "transfer",
	"bofa": "transfer",
	"wf": "transfer",
	"citibank": "transfer",
	"us bank": "transfer",
	"usbank": "transfer",
	"pnc": "transfer",
	"pnc bank": "transfer",
	"td bank": "transfer",
	"tdbank": "transfer",
	"capital one": "transfer",
	"capitalone": "transfer",
	"ally bank": "transfer",
	"discover bank": "transfer",
	"synchrony bank": "transfer",
	"synchrony": "transfer",
	"marcus": "transfer",
	"marcus by goldman sachs": "transfer",
	"american express": "transfer",
	"amex": "transfer",
	"schwab bank": "transfer",
	"charles schwab bank": "transfer",
	"usaa bank": "transfer",
	"usaa": "transfer",
	"navy federal": "transfer",
	"navy federal credit union": "transfer",
	"penfed": "transfer",
	"pentagon federal": "transfer",
	"alliant": "transfer",
	"alliant credit union": "transfer",
	"first republic": "transfer",
	"first republic bank": "transfer",
	"silicon valley bank": "transfer",
	"svb": "transfer",
	"signature bank": "transfer",
	"citizens bank": "transfer",
	"citizens": "transfer",
	"huntington bank": "transfer",
	"huntington": "transfer",
	"keybank": "transfer",
	"key bank": "transfer",
	"regions bank": "transfer",
	"regions": "transfer",
	"fifth third": "transfer",
	"fifth third bank": "transfer",
	"53": "transfer",
	"truist": "transfer",
	"suntrust": "transfer",
	"bb&t": "transfer",
	"bbt": "transfer",
	"m&t bank": "transfer",
	"mt bank": "transfer",
	"comerica": "transfer",
	"comerica bank": "transfer",
	"zions bank": "transfer",
	"zions": "transfer",
	"first national bank": "transfer",
	"first national": "transfer",

	// ========== INVESTMENT PROVIDERS ==========
	"fidelity": "investment",
	"fidelity investments": "investment",
	"vanguard": "investment",
	"vanguard group": "investment",
	"charles schwab": "investment",
	"schwab": "investment",
	"morganstanley": "investment",
	"jpmorgan": "investment",
	"jp morgan": "investment",
	"merrill lynch": "investment",
	"merrill": "investment",
	"bank of america merrill": "investment",
	"edward jones": "investment",
	"edwardjones": "investment",
	"raymond james": "investment",
	"raymondjames": "investment",
	"ubs": "investment",
	"ubs financial": "investment",
	"credit suisse": "investment",
	"deutsche bank": "investment",
	"barclays": "investment",
	"barclays investment": "investment",
	"td ameritrade": "investment",
	"etrade": "investment",
	"e-trade": "investment",
	"etrade financial": "investment",
	"interactive brokers": "investment",
	"ib": "investment",
	"ibkr": "investment",
	"robinhood": "investment",
	"robin hood": "investment",
	"webull": "investment",
	"webull securities": "investment",
	"tastytrade": "investment",
	"tastyworks": "investment",
	"ally invest": "investment",
	"ally": "investment",
	"sofi invest": "investment",
	"sofi": "investment",
	"public": "investment",
	"public.com": "investment",
	"m1 finance": "investment",
	"m1": "investment",
	"stash": "investment",
	"acorns": "investment",
	"betterment": "investment",
	"wealthfront": "investment",
	"t. rowe price": "investment",
	"troweprice": "investment",
	"t rowe price": "investment",
	"franklin templeton": "investment",
	"franklin": "investment",
	"blackrock": "investment",
	"ishares": "investment",
	"i shares": "investment",
	"state street": "investment",
	"state street global": "investment",
	"invesco": "investment",
	"invesco qqq": "investment",
	"proshares": "investment",
	"pro shares": "investment",
	"directional": "investment",
	"directional funds": "investment",

	// ========== TRANSPORTATION ==========
	"seattleap cart/chair": "transportation",
	"seattleap cart": "transportation",
	"seattleap chair": "transportation",
	"seattleap": "transportation",
	"seattle ap": "transportation",
	"seattle airport": "transportation",
	"airport cart": "transportation",
	"airport chair": "transportation",

	// ========== GAS STATIONS ==========
	"costco gas": "transportation",
	"costcogas": "transportation",
	"buc-ee": "transportation",
	"buc-ee's": "transportation",
	"bucee": "transportation",
	"bucees": "transportation",
	"chevron": "transportation",
	"shell": "transportation",
	"bp": "transportation",
	"british petroleum": "transportation",
	"exxon": "transportation",
	"exxonmobil": "transportation",
	"mobil": "transportation",
	"kwik sak": "transportation",
	"kwiksak": "transportation",
	"kwik-sak": "transportation",
	"valero": "transportation",
	"speedway": "transportation",
	"7-eleven": "transportation",
	"7eleven": "transportation",
	"circle k": "transportation",
	"circlek": "transportation",
	"arco": "transportation",
	"am/pm": "transportation",
	"ampm": "transportation",
	"phillips 66": "transportation",
	"phillips66": "transportation",
	"marathon": "transportation",
	"marathon petroleum": "transportation",
	"citgo": "transportation",
	"sunoco": "transportation",
	"conoco": "transportation",
	"conocophillips": "transportation",
	"76": "transportation",
	"unocal 76": "transportation",
	"quik trip": "transportation",
	"quiktrip": "transportation",
	"qt": "transportation",
	"wawa": "transportation",
	"sheetz": "transportation",
	"pilot": "transportation",
	"pilot flying j": "transportation",
	"flying j": "transportation",
	"love's": "transportation",
	"loves": "transportation",
	"loves travel stops": "transportation",
	"ta": "transportation",
	"travelcenters of america": "transportation",

	// ========== ENTERTAINMENT ==========
	"amc": "entertainment",
	"amc theaters": "entertainment",
	"cinemark": "entertainment",
	"regal": "entertainment",
	"regal cinemas": "entertainment",
	"carmike": "entertainment",
	"carmike cinemas": "entertainment",
	"marcus theaters": "entertainment",
	"alamo drafthouse": "entertainment",
	"arc light": "entertainment",
	"arc light cinemas": "entertainment",
	"imax": "entertainment",
	"top golf": "entertainment",
	"topgolf": "entertainment",

	// ========== HEALTHCARE ==========
	"cvs": "healthcare",
	"walgreens": "healthcare",
	"rite aid": "healthcare",
	"riteaid": "healthcare",
	"walmart pharmacy": "healthcare",
	"target pharmacy": "healthcare",
	"kroger pharmacy": "healthcare",
	"safeway pharmacy": "healthcare",
	"costco pharmacy": "healthcare",
	"cvs pharmacy": "healthcare",
	"walgreens pharmacy": "healthcare",

	// ========== PET ==========
	"petsmart": "pet",
	"petco": "pet",
	"pet supplies plus": "pet",
	"pet supplies": "pet",
	"petcare clinic": "pet",
	"pet care clinic": "pet",
	"petcare": "pet",
	"pet care": "pet",
	"petland": "pet",
	"petland discounts": "pet",
	"pet supermarket": "pet",
	"chewy": "pet",
	"chewy.com": "pet",
	"petmeds": "pet",
	"1800petmeds": "pet",

	// ========== PAYROLL / PAYCHECK PROVIDERS ==========
	"adp": "income",
	"automatic data processing": "income",
	"paychex": "income",
	"paychex inc": "income",
	"paycom": "income",
	"paycom software": "income",
	"paylocity": "income",
	"justworks": "income",
	"gusto": "income",
	"bamboohr": "income",
	"workday": "income",
	"workday payroll": "income",
	"zenefits": "income",
	"triple net": "income",
	"triplenet": "income",
	"ceridian": "income",
	"ceridian dayforce": "income",
	"kronos": "income",
	"ukg": "income",
	"ultimate software": "income",
	"paycor": "income",
	"isolved": "income",
	"isolved hcm": "income",
	"quickbooks payroll": "income",
	"intuit payroll": "income",
	"square payroll": "income",
	"wave payroll": "income",
	"onpay": "income",
	"patriot software": "income",
	"surepayroll": "income",
	"sure payroll": "income",
	"payroll plus": "income",
	"payroll plus solutions": "income",
	"heartland payroll": "income",
	"adp workforce now": "income",
	"adp run": "income",
	"adp totalsource": "income",
	"adp vantage": "income",
	"adp ez labor": "income",
	"adp mobile": "income",
	"adp portal": "income",
	"paychex flex": "income",
	"paychex portal": "income",
	"paychex mobile": "income",
	"direct deposit": "income",
	"directdeposit": "income",
	"ach deposit": "income",
	"ach credit": "income",
	"payroll deposit": "income",
	"payroll direct deposit": "income",
	"salary deposit": "income",
	"salary direct deposit": "income",
	"payroll payment": "income",
	"payroll ach": "income",
	"payroll transfer": "income",
	"payroll credit": "income",
	"payroll ach credit": "income",
	"payroll ach deposit": "income",
	"walmart stores": "income",
	"walmart inc": "income",
	"amazon.com": "income",
	"amazon services": "income",
	"apple inc": "income",
	"microsoft corporation": "income",
	"microsoft corp": "income",
	"google llc": "income",
	"alphabet inc": "income",
	"meta platforms": "income",
	"facebook inc": "income",
	"tesla inc": "income",
	"tesla motors": "income",
	"jpmorgan chase": "income",
	"jpmorgan chase & co": "income",
	"bank of america": "income",
	"wells fargo": "income",
	"citigroup": "income",
	"citi": "income",
	"goldman sachs": "income",
	"morgan stanley": "income",
	"berkshire hathaway": "income",
	"exxon mobil": "income",
	"chevron corporation": "income",
	"johnson & johnson": "income",
	"pfizer": "income",
	"unitedhealth group": "income",
	"unitedhealthcare": "income",
	"cvs health": "income",
	"cardinal health": "income",
	"mckesson": "income",
	"att": "income",
	"at&t": "income",
	"verizon communications": "income",
	"comcast": "income",
	"walt disney": "income",
	"disney": "income",
	"netflix": "income",
	"home depot inc": "income",
	"home depot corporation": "income",
	"target corporation": "income",
	"costco wholesale corporation": "income",
	"costco wholesale inc": "income",
	"costco wholesale company": "income",
	"lowes companies": "income",
	"lowes inc": "income",
	"starbucks corporation": "income",
	"mcdonalds corporation": "income",
	"nike": "income",
	"coca cola": "income",
	"pepsico": "income",
	"procter & gamble": "income",
	"pg": "income",
	"general electric": "income",
	"ge": "income",
	"boeing": "income",
	"lockheed martin": "income",
	"raytheon": "income",
	"northrop grumman": "income",
	"general motors": "income",
	"gm": "income",
	"ford motor": "income",
	"ford": "income",
	"fiat chrysler": "income",
	"stellantis": "income",
	"toyota motor": "income",
	"honda motor": "income",
	"nissan motor": "income",
	"volkswagen": "income",
	"bmw": "income",
	"mercedes benz": "income",
	"daimler": "income",
	"social security": "income",
	"ssa": "income",
	"social security administration": "income",
	"unemployment": "income",
	"unemployment insurance": "income",
	"ui": "income",
	"state unemployment": "income",
	"federal unemployment": "income",
	"veterans affairs": "income",
	"va": "income",
	"department of veterans affairs": "income",
	"veterans benefits": "income",
	"va benefits": "income",
	"military pay": "income",
	"military payroll": "income",
	"defense finance": "income",
	"dfas": "income",
	"defense finance and accounting service": "income",
	"us treasury": "income",
	"treasury department": "income",
	"irs refund": "income",
	"tax refund": "income",
	"federal tax refund": "income",
	"state tax refund": "income",
	"plaid": "transfer",
	"yodlee": "transfer",
	"finicity": "transfer",
	"mx": "transfer",
	"mx technologies": "transfer",
	"akoya": "transfer",
	"alloy": "transfer",
	"alloy labs": "transfer",
	"teller": "transfer",
	"teller.io": "transfer",
	"sophtron": "transfer",
	"quovo": "transfer",
	"envestnet yodlee": "transfer",
	"envestnet": "transfer",
	"intuit": "transfer",
	"mint": "transfer",
	"credit karma": "transfer",
	"personal capital": "transfer",
	"empower": "transfer",
	"empower retirement": "transfer",
	"mcc 5411": "groceries",
	"mcc5411": "groceries",
	"mcc 5812": "dining",
	"mcc5812": "dining",
	"mcc 5541": "transportation",
	"mcc5541": "transportation",
	"mcc 4900": "utilities",
	"mcc4900": "utilities",
	"mcc 4814": "utilities",
	"mcc4814": "utilities",
	"mcc 4816": "utilities",
	"mcc4816": "utilities",
	"mcc 5999": "shopping",
	"mcc5999": "shopping",
	"mcc 5311": "shopping",
	"mcc5311": "shopping",
	"mcc 5912": "healthcare",
	"mcc5912": "healthcare",
	"mcc 8011": "healthcare",
	"mcc8011": "healthcare",
	"mcc 8021": "healthcare",
	"mcc8021": "healthcare",
	"mcc 8041": "healthcare",
	"mcc8041": "healthcare",
	"mcc 8042": "healthcare",
	"mcc8042": "healthcare",
	"mcc 8043": "healthcare",
	"mcc8043": "healthcare",
	"mcc 8062": "healthcare",
	"mcc8062": "healthcare",
	"mcc 7832": "entertainment",
	"mcc7832": "entertainment",
	"mcc 7922": "entertainment",
	"mcc7922": "entertainment",
	"mcc 5995": "pet",
	"mcc5995": "pet",
	"mcc 1520": "home improvement",
	"mcc1520": "home improvement",
	"mcc 5211": "home improvement",
	"mcc5211": "home improvement",
	"mcc 5231": "home improvement",
	"mcc5231": "home improvement",
	"mcc 6011": "cash",
	"mcc6011": "cash",
	"mcc 6012": "transfer",
	"mcc6012": "transfer",
	"mcc 6300": "insurance",
	"mcc6300": "insurance",
	"mcc 6010": "cash",
	"mcc6010": "cash",

	// ========== ISO 20022 FINANCIAL MESSAGING STANDARD ==========
	"iso 20022": "transfer",
	"iso20022": "transfer",
	"pain.001": "transfer",
	"pain.002": "transfer",
	"pain.008": "transfer",
	"pain.009": "transfer",
	"camt.052": "transfer",
	"camt.053": "transfer",
	"camt.054": "transfer",
	"camt.056": "transfer",
	"camt.057": "transfer",
	"pacs.008": "transfer",
	"pacs.009": "transfer",
	"pacs.002": "transfer",

	// ========== ACH STANDARD ENTRY CLASS (SEC) CODES ==========
	"ppd": "income",
	"ppd entry": "income",
	"ppd credit": "income",
	"ppd debit": "payment",
	"ccd": "transfer",
	"ccd entry": "transfer",
	"ccd credit": "transfer",
	"ccd debit": "transfer",
	"iat": "transfer",
	"iat entry": "transfer",
	"iat credit": "transfer",
	"iat debit": "transfer",
	"web": "payment",
	"web entry": "payment",
	"web credit": "payment",
	"web debit": "payment",
	"tel": "payment",
	"tel entry": "payment",
	"tel credit": "payment",
	"tel debit": "payment",
	"arc": "payment",
	"arc entry": "payment",
	"boc": "payment",
	"boc entry": "payment",
	"ckd": "payment",
	"ckd entry": "payment",
	"pop": "payment",
	"pop entry": "payment",
	"pos": "payment",
	"pos entry": "payment",
	"rcp": "payment",
	"rcp entry": "payment",
	"xck": "payment",
	"xck entry": "payment",
	"ctx": "transfer",
	"ctx entry": "transfer",
	"ctx credit": "transfer",
	"ctx debit": "transfer",
	"trc": "payment",
	"trc entry": "payment",
	"trx": "payment",
	"trx entry": "payment",

	// ========== ACH TRANSACTION CODES ==========
	"ach 21": "income",
	"ach 22": "payment",
	"ach 23": "payment",
	"ach 24": "payment",
	"ach 31": "income",
	"ach 32": "payment",
	"ach 33": "payment",
	"ach 34": "payment",
	"ach 41": "income",
	"ach 42": "payment",
	"ach 43": "payment",
	"ach 44": "payment",

	// ========== SWIFT / BIC CODES ==========
	"swift": "transfer",
	"swift code": "transfer",
	"bic": "transfer",
	"bic code": "transfer",
	"bank identifier code": "transfer",
	"mt 103": "transfer",
	"mt103": "transfer",
	"mt 202": "transfer",
	"mt202": "transfer",
	"mt 940": "transfer",
	"mt940": "transfer",
	"mt 942": "transfer",
	"mt942": "transfer",
	"mt 950": "transfer",
	"mt950": "transfer",
	"mt 101": "transfer",
	"mt101": "transfer",
	"mt 102": "transfer",
	"mt102": "transfer",
	"mt 104": "transfer",
	"mt104": "transfer",
	"mt 110": "transfer",
	"mt110": "transfer",
	"mt 111": "transfer",
	"mt111": "transfer",
	"mt 200": "transfer",
	"mt200": "transfer",
	"mt 201": "transfer",
	"mt201": "transfer",
	"mt 210": "transfer",
	"mt210": "transfer",
	"mt 900": "transfer",
	"mt900": "transfer",
	"mt 910": "transfer",
	"mt910": "transfer",

	// ========== IBAN (INTERNATIONAL BANK ACCOUNT NUMBER) ==========
	"iban": "transfer",
	"international bank account number": "transfer",
	"iban transfer": "transfer",
	"sepa": "transfer",
	"sepa transfer": "transfer",
	"sepa credit transfer": "transfer",
	"sepa direct debit": "payment",

	// ========== FEDWIRE / FEDERAL RESERVE WIRE TRANSFER ==========
	"fedwire": "transfer",
	"fed wire": "transfer",
	"federal reserve wire": "transfer",
	"fedwire funds transfer": "transfer",
	"fedwire credit": "transfer",
	"fedwire debit": "transfer",
	"routing number": "transfer",
	"aba routing number": "transfer",
	"aba number": "transfer",
	"routing transit number": "transfer",
	"rtn": "transfer",

	// ========== CHIPS (CLEARING HOUSE INTERBANK PAYMENTS SYSTEM) ==========
	"chips": "transfer",
	"clearing house interbank payments": "transfer",
	"chips transfer": "transfer",
	"chips credit": "transfer",
	"chips debit": "transfer",

	// ========== BAI2 BANK REPORTING FORMAT ==========
	"bai2": "transfer",
	"bai 2": "transfer",
	"bai format": "transfer",
	"bai code": "transfer",
	"bai 100": "transfer",
	"bai 101": "transfer",
	"bai 102": "transfer",
	"bai 103": "transfer",
	"bai 104": "transfer",
	"bai 105": "transfer",
	"bai 106": "transfer",
	"bai 107": "transfer",
	"bai 108": "transfer",
	"bai 109": "transfer",
	"bai 110": "transfer",
	"bai 111": "transfer",
	"bai 112": "transfer",
	"bai 115": "transfer",
	"bai 116": "transfer",
	"bai 118": "transfer",
	"bai 121": "transfer",
	"bai 122": "transfer",
	"bai 123": "transfer",
	"bai 124": "transfer",
	"bai 125": "transfer",
	"bai 126": "transfer",
	"bai 127": "transfer",
	"bai 128": "transfer",
	"bai 129": "transfer",
	"bai 130": "transfer",
	"bai 131": "transfer",
	"bai 135": "transfer",
	"bai 136": "transfer",
	"bai 140": "transfer",
	"bai 141": "transfer",
	"bai 142": "transfer",
	"bai 143": "transfer",
	"bai 150": "transfer",
	"bai 151": "transfer",
	"bai 155": "transfer",
	"bai 156": "transfer",
	"bai 160": "transfer",
	"bai 161": "transfer",
	"bai 162": "transfer",
	"bai 163": "transfer",
	"bai 164": "transfer",
	"bai 165": "transfer",
	"bai 170": "transfer",
	"bai 171": "transfer",
	"bai 172": "transfer",
	"bai 180": "transfer",
	"bai 181": "transfer",
	"bai 182": "transfer",
	"bai 183": "transfer",
	"bai 190": "transfer",
	"bai 191": "transfer",
	"bai 192": "transfer",
	"bai 193": "transfer",
	"bai 194": "transfer",
	"bai 195": "transfer",
	"bai 200": "transfer",
	"bai 201": "transfer",
	"bai 202": "transfer",
	"bai 203": "transfer",
	"bai 210": "transfer",
	"bai 211": "transfer",
	"bai 212": "transfer",
	"bai 220": "transfer",
	"bai 221": "transfer",
	"bai 222": "transfer",

	// ========== CFONB (FRENCH BANK FORMAT) ==========
	"cfonb": "transfer",
	"cfonb 120": "transfer",
	"cfonb 240": "transfer",

	// ========== FINCEN (FINANCIAL CRIMES ENFORCEMENT NETWORK) ==========
	"fincen": "transfer",
	"bsa": "transfer",
	"bank secrecy act": "transfer",
	"sar": "transfer",
	"suspicious activity report": "transfer",
	"ctr": "transfer",
	"currency transaction report": "transfer",
	"sdn": "transfer",
	"specially designated nationals": "transfer",
	"ofac": "transfer",
	"office of foreign assets control": "transfer",
	"fincen 01": "transfer",
	"fincen 02": "transfer",
	"fincen 03": "transfer",
	"fincen 04": "transfer",
	"fincen 05": "transfer",
	"fincen 06": "transfer",
	"fincen 07": "transfer",
	"fincen 08": "transfer",
	"fincen 09": "transfer",

	// ========== IRS TAX CATEGORIES ==========
	"irs": "income",
	"internal revenue service": "income",
	"irs w-2": "income",
	"irs w2": "income",
	"irs 1099": "income",
	"irs 1099-misc": "income",
	"irs 1099-int": "income",
	"irs 1099-div": "income",
	"irs 1099-b": "income",
	"irs 1099-r": "income",
	"irs 1099-g": "income",
	"irs 1099-s": "income",
	"irs 1099-k": "income",
	"irs schedule c": "income",
	"irs schedule e": "income",
	"irs schedule f": "income",
	"irs advertising": "shopping",
	"irs car and truck expenses": "transportation",
	"irs commissions and fees": "payment",
	"irs contract labor": "payment",
	"irs depreciation": "payment",
	"irs employee benefit programs": "payment",
	"irs insurance": "insurance",
	"irs interest": "payment",
	"irs legal and professional services": "service",
	"irs office expenses": "shopping",
	"irs pension and profit-sharing plans": "investment",
	"irs rent or lease": "rent",
	"irs repairs and maintenance": "home improvement",
	"irs supplies": "shopping",
	"irs taxes and licenses": "payment",
	"irs travel": "travel",
	"irs meals and entertainment": "dining",
	"irs utilities": "utilities",
	"irs wages": "income",
	"irs other expenses": "payment",
	"irs estimated tax": "payment",
	"irs tax payment": "payment",
	"irs federal tax": "payment",
	"irs state tax": "payment",
	"irs local tax": "payment",
	"irs payroll tax": "payment",
	"irs self-employment tax": "payment",
	"irs income tax": "payment",
	"irs sales tax": "payment",
	"irs property tax": "payment",
	"irs excise tax": "payment",
	"irs gift tax": "payment",
	"irs estate tax": "payment",

	// ========== GAAP (GENERALLY ACCEPTED ACCOUNTING PRINCIPLES) ==========
	"gaap": "transfer",
	"generally accepted accounting principles": "transfer",
	"gaap assets": "investment",
	"gaap current assets": "investment",
	"gaap cash": "cash",
	"gaap accounts receivable": "income",
	"gaap inventory": "shopping",
	"gaap prepaid expenses": "payment",
	"gaap fixed assets": "investment",
	"gaap property plant equipment": "investment",
	"gaap liabilities": "payment",
	"gaap current liabilities": "payment",
	"gaap accounts payable": "payment",
	"gaap accrued expenses": "payment",
	"gaap long-term debt": "payment",
	"gaap equity": "investment",
	"gaap revenue": "income",
	"gaap sales revenue": "income",
	"gaap service revenue": "income",
	"gaap interest revenue": "income",
	"gaap dividend revenue": "income",
	"gaap expenses": "payment",
	"gaap cost of goods sold": "shopping",
	"gaap operating expenses": "payment",
	"gaap selling expenses": "payment",
	"gaap administrative expenses": "payment",
	"gaap interest expense": "payment",
	"gaap tax expense": "payment",
	"gaap depreciation expense": "payment",
	"gaap amortization expense": "payment",

	// ========== SIC (STANDARD INDUSTRIAL CLASSIFICATION) CODES ==========
	"sic 01": "groceries",
	"sic 02": "groceries",
	"sic 07": "groceries",
	"sic 10": "utilities",
	"sic 13": "utilities",
	"sic 15": "home improvement",
	"sic 17": "home improvement",
	"sic 20": "groceries",
	"sic 21": "utilities",
	"sic 22": "shopping",
	"sic 23": "shopping",
	"sic 24": "home improvement",
	"sic 25": "home improvement",
	"sic 26": "shopping",
	"sic 27": "shopping",
	"sic 28": "healthcare",
	"sic 29": "utilities",
	"sic 30": "shopping",
	"sic 31": "shopping",
	"sic 32": "shopping",
	"sic 33": "shopping",
	"sic 34": "shopping",
	"sic 35": "tech",
	"sic 36": "tech",
	"sic 37": "transportation",
	"sic 38": "tech",
	"sic 39": "shopping",
	"sic 40": "utilities",
	"sic 41": "utilities",
	"sic 42": "transportation",
	"sic 44": "transportation",
	"sic 45": "transportation",
	"sic 46": "transfer",
	"sic 47": "transportation",
	"sic 48": "utilities",
	"sic 49": "utilities",
	"sic 50": "shopping",
	"sic 51": "shopping",
	"sic 52": "shopping",
	"sic 53": "shopping",
	"sic 54": "groceries",
	"sic 55": "shopping",
	"sic 56": "shopping",
	"sic 57": "shopping",
	"sic 58": "dining",
	"sic 59": "shopping",
	"sic 60": "investment",
	"sic 61": "investment",
	"sic 62": "investment",
	"sic 63": "insurance",
	"sic 64": "insurance",
	"sic 65": "investment",
	"sic 67": "investment",
	"sic 70": "service",
	"sic 72": "dining",
	"sic 73": "service",
	"sic 75": "transportation",
	"sic 76": "service",
	"sic 78": "entertainment",
	"sic 79": "entertainment",
	"sic 80": "healthcare",
	"sic 81": "service",
	"sic 82": "service",
	"sic 83": "service",
	"sic 84": "service",
	"sic 86": "service",
	"sic 87": "service",
	"sic 88": "service",
	"sic 89": "service",
	"sic 91": "utilities",
	"sic 92": "utilities",
	"sic 93": "utilities",
	"sic 94": "utilities",
	"sic 95": "utilities",
	"sic 96": "utilities",
	"sic 97": "utilities",

	// ========== NAICS (NORTH AMERICAN INDUSTRY CLASSIFICATION SYSTEM) CODES ==========
	"naics 11": "groceries",
	"naics 21": "utilities",
	"naics 22": "utilities",
	"naics 23": "home improvement",
	"naics 31": "shopping",
	"naics 32": "shopping",
	"naics 33": "shopping",
	"naics 34": "shopping",
	"naics 35": "tech",
	"naics 36": "transportation",
	"naics 42": "shopping",
	"naics 44": "shopping",
	"naics 45": "shopping",
	"naics 48": "transportation",
	"naics 49": "utilities",
	"naics 51": "tech",
	"naics 52": "investment",
	"naics 53": "investment",
	"naics 54": "service",
	"naics 55": "service",
	"naics 56": "service",
	"naics 61": "service",
	"naics 62": "healthcare",
	"naics 71": "entertainment",
	"naics 72": "dining",
	"naics 81": "service",
	"naics 92": "utilities",

	// ========== EDUCATION/SCHOOL PAYMENTS ==========
	"school district": "education",
	"schooldistrict": "education",
	"bellevue school district": "education",
	"bellevueschooldistrict": "education",
	"middle school": "education",
	"middleschool": "education",
	"high school": "education",
	"highschool": "education",
	"elementary school": "education",
	"elementaryschool": "education",
	"elementary": "education",
	"secondary school": "education",
	"secondaryschool": "education",
	"senior secondary school": "education",
	"seniorschool": "education",
	"tyee middle school": "education",
	"tyeemiddleschool": "education",
	"newspaper": "education",
	"magazine": "education",
	"journal": "education",
	"academic journal": "education",
	"research journal": "education",
	"scientific journal": "education",
	"library": "education",
	"phd": "education",
	"ph.d": "education",
	"ph.d.": "education",
	"doctorate": "education",
	"graduate school": "education",
	"graduateschool": "education",

	// ========== HEALTH/BEAUTY SERVICES ==========
	"stop 4 nails": "health",
	"stop4nails": "health",
	"stop four nails": "health",
	"stopfournails": "health",
	"new york cosmetic store": "health",
	"newyorkcosmeticstore": "health",
	"ny cosmetic store": "health",
	"nycosmeticstore": "health",
	"cosmetic store": "health",
	"cosmeticstore": "health",
	"cosmetics": "health",
	"makeup store": "health",
	"makeupstore": "health",

	// ========== EDUCATION ==========
	"gurukul": "education",
	"vidyalaya": "education",
	"shiksha": "education",
	"pathshala": "education",
	"escuela": "education",
	"colegio": "education",
	"universidad": "education",
	"école": "education",
	"collège": "education",
	"université": "education",
	"schule": "education",
	"universität": "education",
	"madrasa": "education",
	"madrassa": "education",
	"kuttab": "education",
	"school": "education",
	"university": "education",
	"college": "education",
	"tuition": "education",
	"books": "education",
	"bookstore": "education",
	"book store": "education",
	"reading": "education",
	"textbook": "education",
	"text book": "education",
	"education": "education",
	"educational": "education",
	"course": "education",
	"class": "education",
	"lesson": "education",
	"training": "education",
	"pearson vue": "education",
	"pearsonvue": "education",
	"vue": "education",
	"aamc": "education",
	"sat": "education",
	"toefl": "education",
	"gre": "education",
	"gmat": "education",
	"lsat": "education",
	"mcat": "education",
	"act": "education",
	"ap exam": "education",
	"ib exam": "education",
	"clep": "education",
	"praxis": "education",
	"bar exam": "education",
	"nclex": "education",
	"usmle": "education",
	"comlex": "education",
	"ets": "education",
	"prometric": "education",
	"test registration": "education",
	"test fee": "education",
	"test center": "education",
	"exam fee": "education",
	"exam registration": "education",

	// ========== ANSI X9 FINANCIAL SERVICES STANDARDS ==========
	"ansi x9": "transfer",
	"ansix9": "transfer",
	"ansi x9.13": "transfer",
	"ansi x9.100": "transfer",
	"ansi x9.100-140": "transfer",
	"ansi x9.37": "transfer",
	"ansi x9.100-187": "transfer",

	// ========== INTER-BANK TRANSFER SYSTEMS ==========
	"target2": "transfer",
	"target 2": "transfer",
	"target2 transfer": "transfer",
	"chaps": "transfer",
	"chaps transfer": "transfer",
	"bacs": "transfer",
	"bacs transfer": "transfer",
	"bacs direct debit": "payment",
	"bacs direct credit": "income",
	"faster payments": "transfer",
	"faster payments service": "transfer",
	"fps": "transfer",
	"eft": "transfer",
	"electronic funds transfer": "transfer",
	"eft canada": "transfer",
	"interac": "transfer",
	"interac e-transfer": "transfer",
	"interac etransfer": "transfer",
	"npp": "transfer",
	"new payments platform": "transfer",
	"npp australia": "transfer",
	"neft": "transfer",
	"national electronic funds transfer": "transfer",
	"neft india": "transfer",
	"rtgs": "transfer",
	"real time gross settlement": "transfer",
	"rtgs india": "transfer",
	"imps": "transfer",
	"immediate payment service": "transfer",
	"imps india": "transfer",
	"upi": "transfer",
	"unified payments interface": "transfer",
	"upi india": "transfer",
	"sepa instant": "transfer",
	"sepa instant credit transfer": "transfer",
	"tips": "transfer",
	"target instant payment settlement": "transfer",
}
