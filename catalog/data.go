package catalog

// drugs is the full primary-care (POZ) reference catalog. Entries keep
// the ordering used by the paper questionnaire annexes: grouped by
// indication, most common drugs first.
var drugs = []Drug{
	// Leki przeciwnadciśnieniowe
	{
		ID:               "amlodipine",
		Name:             "Amlodipina",
		ActiveIngredient: "amlodipine",
		Category:         CategoryAntihypertensive,
		CommonDosages:    []string{"2.5mg", "5mg", "10mg"},
		SearchTerms:      []string{"amlodipina", "amlodipine", "norvasc", "tenox", "kalpress", "amlonor"},
	},
	{
		ID:               "enalapril",
		Name:             "Enalapril",
		ActiveIngredient: "enalapril",
		Category:         CategoryAntihypertensive,
		CommonDosages:    []string{"2.5mg", "5mg", "10mg", "20mg"},
		SearchTerms:      []string{"enalapril", "enap", "enapril", "renipril", "berlipril", "enacard"},
	},
	{
		ID:               "losartan",
		Name:             "Losartan",
		ActiveIngredient: "losartan",
		Category:         CategoryAntihypertensive,
		CommonDosages:    []string{"25mg", "50mg", "100mg"},
		SearchTerms:      []string{"losartan", "cozaar", "lozap", "fortzaar", "losacor"},
	},
	{
		ID:               "bisoprolol",
		Name:             "Bisoprolol",
		ActiveIngredient: "bisoprolol",
		Category:         CategoryBetaBlocker,
		CommonDosages:    []string{"1.25mg", "2.5mg", "5mg", "10mg"},
		SearchTerms:      []string{"bisoprolol", "bisocard", "concor", "emcor", "monocor"},
	},
	{
		ID:               "hydrochlorothiazide",
		Name:             "Hydrochlorotiazyd",
		ActiveIngredient: "hydrochlorothiazide",
		Category:         CategoryDiuretic,
		CommonDosages:    []string{"12.5mg", "25mg"},
		SearchTerms:      []string{"hydrochlorotiazyd", "hctz", "microzide", "disothiazide", "hydrosaluric"},
	},

	// Leki przeciwcukrzycowe
	{
		ID:               "metformin",
		Name:             "Metformina",
		ActiveIngredient: "metformin",
		Category:         CategoryAntidiabetic,
		CommonDosages:    []string{"500mg", "850mg", "1000mg"},
		SearchTerms:      []string{"metformina", "metformin", "glucophage", "siofor", "metfogamma", "metformax"},
	},
	{
		ID:               "gliclazide",
		Name:             "Gliklazydu",
		ActiveIngredient: "gliclazide",
		Category:         CategoryAntidiabetic,
		CommonDosages:    []string{"30mg", "60mg", "80mg"},
		SearchTerms:      []string{"gliklazydu", "gliclazide", "diabeton", "diaprel", "gliclada", "glyrelan"},
	},
	{
		ID:               "insulin",
		Name:             "Insulina",
		ActiveIngredient: "insulin",
		Category:         CategoryInsulin,
		CommonDosages:    []string{"j.m.", "wg potrzeb"},
		SearchTerms:      []string{"insulina", "insulin", "humulin", "novorapid", "lantus", "actrapid", "protaphane", "levemir", "apidra"},
	},

	// Leki przeciwzakrzepowe
	{
		ID:               "warfarin",
		Name:             "Warfaryna",
		ActiveIngredient: "warfarin",
		Category:         CategoryAnticoagulant,
		CommonDosages:    []string{"1mg", "3mg", "5mg"},
		SearchTerms:      []string{"warfaryna", "warfarin", "coumadin", "marevan", "warfin"},
	},
	{
		ID:               "acenocoumarol",
		Name:             "Acenocoumarol",
		ActiveIngredient: "acenocoumarol",
		Category:         CategoryAnticoagulant,
		CommonDosages:    []string{"1mg", "4mg"},
		SearchTerms:      []string{"acenocoumarol", "sintrom", "acenocumarol", "syncumar"},
	},
	{
		ID:               "clopidogrel",
		Name:             "Klopidogrel",
		ActiveIngredient: "clopidogrel",
		Category:         CategoryAntiplatelet,
		CommonDosages:    []string{"75mg"},
		SearchTerms:      []string{"klopidogrel", "clopidogrel", "plavix", "trombex", "clopisan", "plagril"},
	},
	{
		ID:               "aspirin",
		Name:             "Kwas acetylosalicylowy",
		ActiveIngredient: "acetylsalicylic acid",
		Category:         CategoryAntiplatelet,
		CommonDosages:    []string{"75mg", "100mg", "150mg"},
		SearchTerms:      []string{"aspiryna", "aspirin", "acard", "polocard", "kwas acetylosalicylowy"},
	},
	// Nowe antykoagulanty doustne (NOAC)
	{
		ID:               "rivaroxaban",
		Name:             "Riwaroksaban",
		ActiveIngredient: "rivaroxaban",
		Category:         CategoryAnticoagulant,
		CommonDosages:    []string{"10mg", "15mg", "20mg"},
		SearchTerms:      []string{"riwaroksaban", "rivaroxaban", "xarelto"},
	},
	{
		ID:               "apixaban",
		Name:             "Apiksaban",
		ActiveIngredient: "apixaban",
		Category:         CategoryAnticoagulant,
		CommonDosages:    []string{"2.5mg", "5mg"},
		SearchTerms:      []string{"apiksaban", "apixaban", "eliquis"},
	},
	{
		ID:               "dabigatran",
		Name:             "Dabigatran",
		ActiveIngredient: "dabigatran",
		Category:         CategoryAnticoagulant,
		CommonDosages:    []string{"75mg", "110mg", "150mg"},
		SearchTerms:      []string{"dabigatran", "pradaxa"},
	},
	{
		ID:               "edoxaban",
		Name:             "Edoksaban",
		ActiveIngredient: "edoxaban",
		Category:         CategoryAnticoagulant,
		CommonDosages:    []string{"30mg", "60mg"},
		SearchTerms:      []string{"edoksaban", "edoxaban", "lixiana"},
	},
	// Heparyny drobnocząsteczkowe
	{
		ID:               "enoxaparin",
		Name:             "Enoksaparyna",
		ActiveIngredient: "enoxaparin",
		Category:         CategoryHeparin,
		CommonDosages:    []string{"20mg", "40mg", "60mg", "80mg", "100mg"},
		SearchTerms:      []string{"enoksaparyna", "enoxaparin", "clexane", "lovenox"},
	},
	{
		ID:               "nadroparin",
		Name:             "Nadroparyna",
		ActiveIngredient: "nadroparin",
		Category:         CategoryHeparin,
		CommonDosages:    []string{"2850j.m.", "3800j.m.", "5700j.m.", "7600j.m."},
		SearchTerms:      []string{"nadroparyna", "nadroparin", "fraxiparine"},
	},
	{
		ID:               "dalteparin",
		Name:             "Dalteparyna",
		ActiveIngredient: "dalteparin",
		Category:         CategoryHeparin,
		CommonDosages:    []string{"2500j.m.", "5000j.m.", "7500j.m.", "10000j.m."},
		SearchTerms:      []string{"dalteparyna", "dalteparin", "fragmin"},
	},
	// Dodatkowe leki przeciwpłytkowe
	{
		ID:               "ticagrelor",
		Name:             "Tikagrelor",
		ActiveIngredient: "ticagrelor",
		Category:         CategoryAntiplatelet,
		CommonDosages:    []string{"60mg", "90mg"},
		SearchTerms:      []string{"tikagrelor", "ticagrelor", "brilique"},
	},
	{
		ID:               "prasugrel",
		Name:             "Prasugrel",
		ActiveIngredient: "prasugrel",
		Category:         CategoryAntiplatelet,
		CommonDosages:    []string{"5mg", "10mg"},
		SearchTerms:      []string{"prasugrel", "efient"},
	},

	// Leki przeciwbólowe
	{
		ID:               "paracetamol",
		Name:             "Paracetamol",
		ActiveIngredient: "paracetamol",
		Category:         CategoryAnalgesic,
		CommonDosages:    []string{"500mg", "1000mg"},
		SearchTerms:      []string{"paracetamol", "acetaminophen", "apap", "efferalgan", "panadol", "codipar", "rapidol"},
	},
	{
		ID:               "ibuprofen",
		Name:             "Ibuprofen",
		ActiveIngredient: "ibuprofen",
		Category:         CategoryNSAID,
		CommonDosages:    []string{"200mg", "400mg", "600mg"},
		SearchTerms:      []string{"ibuprofen", "ibuprom", "nurofen", "advil", "ibufen", "solpaflex"},
	},
	{
		ID:               "diclofenac",
		Name:             "Diklofenak",
		ActiveIngredient: "diclofenac",
		Category:         CategoryNSAID,
		CommonDosages:    []string{"25mg", "50mg", "75mg"},
		SearchTerms:      []string{"diklofenak", "diclofenac", "voltaren", "cataflam", "olfen", "diclac"},
	},
	{
		ID:               "tramadol",
		Name:             "Tramadol",
		ActiveIngredient: "tramadol",
		Category:         CategoryOpioid,
		CommonDosages:    []string{"50mg", "100mg", "150mg", "200mg"},
		SearchTerms:      []string{"tramadol", "tramal", "contramal", "amadol", "dolzam"},
	},

	// Leki na żołądek
	{
		ID:               "omeprazole",
		Name:             "Omeprazol",
		ActiveIngredient: "omeprazole",
		Category:         CategoryPPI,
		CommonDosages:    []string{"10mg", "20mg", "40mg"},
		SearchTerms:      []string{"omeprazol", "omeprazole", "losec", "tulzol", "bioprazol", "omessa"},
	},
	{
		ID:               "pantoprazole",
		Name:             "Pantoprazol",
		ActiveIngredient: "pantoprazole",
		Category:         CategoryPPI,
		CommonDosages:    []string{"20mg", "40mg"},
		SearchTerms:      []string{"pantoprazol", "pantoprazole", "controloc", "nolpaza", "zipantola", "pantopan"},
	},
	{
		ID:               "ranitidine",
		Name:             "Ranitydyna",
		ActiveIngredient: "ranitidine",
		Category:         CategoryH2Blocker,
		CommonDosages:    []string{"150mg", "300mg"},
		SearchTerms:      []string{"ranitydyna", "ranitidine", "zantac", "ranigast", "histac", "ranisan"},
	},

	// Antybiotyki
	{
		ID:               "amoxicillin",
		Name:             "Amoksycylina",
		ActiveIngredient: "amoxicillin",
		Category:         CategoryAntibiotic,
		CommonDosages:    []string{"250mg", "500mg", "1000mg"},
		SearchTerms:      []string{"amoksycylina", "amoxicillin", "amoxil", "ospamox", "duomox", "flemoxin"},
	},
	{
		ID:               "azithromycin",
		Name:             "Azytromycyna",
		ActiveIngredient: "azithromycin",
		Category:         CategoryAntibiotic,
		CommonDosages:    []string{"250mg", "500mg"},
		SearchTerms:      []string{"azytromycyna", "azithromycin", "sumamed", "zetamax", "azimycin", "zitromax"},
	},
	{
		ID:               "clarithromycin",
		Name:             "Klarytromycyna",
		ActiveIngredient: "clarithromycin",
		Category:         CategoryAntibiotic,
		CommonDosages:    []string{"250mg", "500mg"},
		SearchTerms:      []string{"klarytromycyna", "clarithromycin", "klacid", "fromilid", "clabax", "clarem"},
	},
	{
		ID:               "ciprofloxacin",
		Name:             "Ciprofloksacyna",
		ActiveIngredient: "ciprofloxacin",
		Category:         CategoryAntibiotic,
		CommonDosages:    []string{"250mg", "500mg", "750mg"},
		SearchTerms:      []string{"ciprofloksacyna", "ciprofloxacin", "ciprinol", "quintor", "ciproxin", "ciprobay"},
	},

	// Leki na cholesterol
	{
		ID:               "atorvastatin",
		Name:             "Atorwastatyna",
		ActiveIngredient: "atorvastatin",
		Category:         CategoryStatin,
		CommonDosages:    []string{"10mg", "20mg", "40mg", "80mg"},
		SearchTerms:      []string{"atorwastatyna", "atorvastatin", "lipitor", "tulip", "sortis", "torvacard"},
	},
	{
		ID:               "simvastatin",
		Name:             "Simwastatyna",
		ActiveIngredient: "simvastatin",
		Category:         CategoryStatin,
		CommonDosages:    []string{"10mg", "20mg", "40mg"},
		SearchTerms:      []string{"simwastatyna", "simvastatin", "zocor", "apo-simva", "simgal", "vasilip"},
	},

	// Leki na tarczycę
	{
		ID:               "levothyroxine",
		Name:             "Lewotyroksyna",
		ActiveIngredient: "levothyroxine",
		Category:         CategoryThyroidHormone,
		CommonDosages:    []string{"25mcg", "50mcg", "75mcg", "100mcg", "125mcg", "150mcg"},
		SearchTerms:      []string{"lewotyroksyna", "levothyroxine", "euthyrox", "letrox", "eferox", "thyro-4"},
	},
	{
		ID:               "methimazole",
		Name:             "Tiamazol",
		ActiveIngredient: "methimazole",
		Category:         CategoryAntithyroid,
		CommonDosages:    []string{"5mg", "10mg"},
		SearchTerms:      []string{"tiamazol", "methimazole", "thyrozol", "metizol", "mercazole"},
	},

	// Leki psychotropowe (podstawowe w POZ)
	{
		ID:               "sertraline",
		Name:             "Sertralina",
		ActiveIngredient: "sertraline",
		Category:         CategoryAntidepressant,
		CommonDosages:    []string{"25mg", "50mg", "100mg"},
		SearchTerms:      []string{"sertralina", "sertraline", "zoloft", "sertagen", "setaloft", "asentra"},
	},
	{
		ID:               "escitalopram",
		Name:             "Escitalopram",
		ActiveIngredient: "escitalopram",
		Category:         CategoryAntidepressant,
		CommonDosages:    []string{"5mg", "10mg", "20mg"},
		SearchTerms:      []string{"escitalopram", "cipralex", "lexapro", "escilex", "selectra", "elicea"},
	},
	{
		ID:               "lorazepam",
		Name:             "Lorazepam",
		ActiveIngredient: "lorazepam",
		Category:         CategoryBenzodiazepine,
		CommonDosages:    []string{"0.5mg", "1mg", "2mg"},
		SearchTerms:      []string{"lorazepam", "ativan", "lorafen", "emotival", "sinestron"},
	},

	// Leki na alergię
	{
		ID:               "cetirizine",
		Name:             "Cetyryzyna",
		ActiveIngredient: "cetirizine",
		Category:         CategoryAntihistamine,
		CommonDosages:    []string{"5mg", "10mg"},
		SearchTerms:      []string{"cetyryzyna", "cetirizine", "zyrtec", "alerid", "amertil", "letizen"},
	},
	{
		ID:               "loratadine",
		Name:             "Loratadyna",
		ActiveIngredient: "loratadine",
		Category:         CategoryAntihistamine,
		CommonDosages:    []string{"10mg"},
		SearchTerms:      []string{"loratadyna", "loratadine", "claritin", "claritine", "lomilan", "flonidan"},
	},

	// Witaminy i suplementy
	{
		ID:               "vitamin-d3",
		Name:             "Witamina D3",
		ActiveIngredient: "cholecalciferol",
		Category:         CategoryVitamin,
		CommonDosages:    []string{"1000j.m.", "2000j.m.", "4000j.m."},
		SearchTerms:      []string{"witamina d3", "vitamin d3", "cholecalciferol", "vigantol", "detriferol", "devaron"},
	},
	{
		ID:               "vitamin-b12",
		Name:             "Witamina B12",
		ActiveIngredient: "cyanocobalamin",
		Category:         CategoryVitamin,
		CommonDosages:    []string{"500mcg", "1000mcg"},
		SearchTerms:      []string{"witamina b12", "vitamin b12", "cyanocobalamin", "cobalamin", "rubranova", "medivitan"},
	},
	{
		ID:               "folic-acid",
		Name:             "Kwas foliowy",
		ActiveIngredient: "folic acid",
		Category:         CategoryVitamin,
		CommonDosages:    []string{"0.4mg", "5mg"},
		SearchTerms:      []string{"kwas foliowy", "folic acid", "folacin", "folian", "folacyna", "foliber"},
	},

	// Leki na kaszel i przeziębienie
	{
		ID:               "dextromethorphan",
		Name:             "Dekstrometorfan",
		ActiveIngredient: "dextromethorphan",
		Category:         CategoryAntitussive,
		CommonDosages:    []string{"15mg", "30mg"},
		SearchTerms:      []string{"dekstrometorfan", "dextromethorphan", "robitussin", "acodin", "tussin", "tussidane"},
	},
	{
		ID:               "acetylcysteine",
		Name:             "Acetylcysteina",
		ActiveIngredient: "acetylcysteine",
		Category:         CategoryMucolytic,
		CommonDosages:    []string{"200mg", "600mg"},
		SearchTerms:      []string{"acetylcysteina", "acetylcysteine", "acc", "fluimucil", "mucobene", "aceteks"},
	},

	// Dodatkowe leki przeciwnadciśnieniowe
	{
		ID:               "perindopril",
		Name:             "Perindopril",
		ActiveIngredient: "perindopril",
		Category:         CategoryAntihypertensive,
		CommonDosages:    []string{"2mg", "4mg", "8mg", "10mg"},
		SearchTerms:      []string{"perindopril", "prestarium", "perineva", "coversyl", "prenessa", "perstarium"},
	},
	{
		ID:               "ramipril",
		Name:             "Ramipril",
		ActiveIngredient: "ramipril",
		Category:         CategoryAntihypertensive,
		CommonDosages:    []string{"1.25mg", "2.5mg", "5mg", "10mg"},
		SearchTerms:      []string{"ramipril", "altace", "tritace", "piramil", "amprilan", "cardace"},
	},
	{
		ID:               "valsartan",
		Name:             "Walsartan",
		ActiveIngredient: "valsartan",
		Category:         CategoryAntihypertensive,
		CommonDosages:    []string{"40mg", "80mg", "160mg", "320mg"},
		SearchTerms:      []string{"walsartan", "valsartan", "diovan", "nortivan", "tareg", "valsacor"},
	},
	{
		ID:               "telmisartan",
		Name:             "Telmisartan",
		ActiveIngredient: "telmisartan",
		Category:         CategoryAntihypertensive,
		CommonDosages:    []string{"20mg", "40mg", "80mg"},
		SearchTerms:      []string{"telmisartan", "micardis", "telmizek", "pritor", "tolura"},
	},
	{
		ID:               "indapamide",
		Name:             "Indapamid",
		ActiveIngredient: "indapamide",
		Category:         CategoryDiuretic,
		CommonDosages:    []string{"1.5mg", "2.5mg"},
		SearchTerms:      []string{"indapamid", "indapamide", "tertensif", "rawel", "natrilix", "indix"},
	},
	{
		ID:               "furosemide",
		Name:             "Furosemid",
		ActiveIngredient: "furosemide",
		Category:         CategoryDiuretic,
		CommonDosages:    []string{"20mg", "40mg"},
		SearchTerms:      []string{"furosemid", "furosemide", "lasix", "furorese", "furix", "furon"},
	},
	{
		ID:               "spironolactone",
		Name:             "Spironolakton",
		ActiveIngredient: "spironolactone",
		Category:         CategoryDiuretic,
		CommonDosages:    []string{"25mg", "50mg", "100mg"},
		SearchTerms:      []string{"spironolakton", "spironolactone", "verospiron", "aldactone", "spirix", "spirono"},
	},

	// Więcej beta-blokerów
	{
		ID:               "metoprolol",
		Name:             "Metoprolol",
		ActiveIngredient: "metoprolol",
		Category:         CategoryBetaBlocker,
		CommonDosages:    []string{"25mg", "50mg", "100mg", "200mg"},
		SearchTerms:      []string{"metoprolol", "betaloc", "corvitol", "egis", "metcard", "vasocardin"},
	},
	{
		ID:               "propranolol",
		Name:             "Propranolol",
		ActiveIngredient: "propranolol",
		Category:         CategoryBetaBlocker,
		CommonDosages:    []string{"10mg", "40mg", "80mg"},
		SearchTerms:      []string{"propranolol", "inderal", "obsidan", "sumial", "anaprilinum", "propra"},
	},
	{
		ID:               "nebivolol",
		Name:             "Nebivolol",
		ActiveIngredient: "nebivolol",
		Category:         CategoryBetaBlocker,
		CommonDosages:    []string{"2.5mg", "5mg", "10mg"},
		SearchTerms:      []string{"nebivolol", "nebilet", "lobivon", "hypoloc", "binelol"},
	},

	// Rozszerzenie leków przeciwcukrzycowych
	{
		ID:               "glimepiride",
		Name:             "Glimepiryd",
		ActiveIngredient: "glimepiride",
		Category:         CategoryAntidiabetic,
		CommonDosages:    []string{"1mg", "2mg", "3mg", "4mg"},
		SearchTerms:      []string{"glimepiryd", "glimepiride", "amaryl", "diaprel", "glimepirid", "solosa"},
	},
	{
		ID:               "sitagliptin",
		Name:             "Sitagliptyna",
		ActiveIngredient: "sitagliptin",
		Category:         CategoryAntidiabetic,
		CommonDosages:    []string{"25mg", "50mg", "100mg"},
		SearchTerms:      []string{"sitagliptyna", "sitagliptin", "januvia", "xelevia", "tesavel", "ristfor"},
	},
	{
		ID:               "empagliflozin",
		Name:             "Empagliflozyna",
		ActiveIngredient: "empagliflozin",
		Category:         CategoryAntidiabetic,
		CommonDosages:    []string{"10mg", "25mg"},
		SearchTerms:      []string{"empagliflozyna", "empagliflozin", "jardiance", "boehringer"},
	},

	// Więcej statyn
	{
		ID:               "rosuvastatin",
		Name:             "Rosuwastatyna",
		ActiveIngredient: "rosuvastatin",
		Category:         CategoryStatin,
		CommonDosages:    []string{"5mg", "10mg", "20mg", "40mg"},
		SearchTerms:      []string{"rosuwastatyna", "rosuvastatin", "crestor", "rosart", "roswera", "roxera"},
	},
	{
		ID:               "pravastatin",
		Name:             "Prawastatyna",
		ActiveIngredient: "pravastatin",
		Category:         CategoryStatin,
		CommonDosages:    []string{"10mg", "20mg", "40mg"},
		SearchTerms:      []string{"prawastatyna", "pravastatin", "lipostat", "pravachol", "pravaselect"},
	},

	// Leki na żołądek - rozszerzenie
	{
		ID:               "lansoprazole",
		Name:             "Lansoprazol",
		ActiveIngredient: "lansoprazole",
		Category:         CategoryPPI,
		CommonDosages:    []string{"15mg", "30mg"},
		SearchTerms:      []string{"lansoprazol", "lansoprazole", "prevacid", "lanzul", "agopton", "lanzap"},
	},
	{
		ID:               "esomeprazole",
		Name:             "Ezomeprazol",
		ActiveIngredient: "esomeprazole",
		Category:         CategoryPPI,
		CommonDosages:    []string{"20mg", "40mg"},
		SearchTerms:      []string{"ezomeprazol", "esomeprazole", "nexium", "emanera", "esoxx", "esopral"},
	},
	{
		ID:               "sucralfate",
		Name:             "Sukralfat",
		ActiveIngredient: "sucralfate",
		Category:         CategoryGastroprotective,
		CommonDosages:    []string{"1g"},
		SearchTerms:      []string{"sukralfat", "sucralfate", "venter", "ulcogant", "andapsin"},
	},
	{
		ID:               "domperidone",
		Name:             "Domperidon",
		ActiveIngredient: "domperidone",
		Category:         CategoryAntiemetic,
		CommonDosages:    []string{"10mg"},
		SearchTerms:      []string{"domperidon", "domperidone", "motilium", "domstal", "gastroperidone"},
	},

	// Więcej antybiotyków
	{
		ID:               "doxycycline",
		Name:             "Doksycyklina",
		ActiveIngredient: "doxycycline",
		Category:         CategoryAntibiotic,
		CommonDosages:    []string{"100mg", "200mg"},
		SearchTerms:      []string{"doksycyklina", "doxycycline", "vibramycin", "doxybene", "unidox", "doxyhexal"},
	},
	{
		ID:               "cephalexin",
		Name:             "Cefaleksyna",
		ActiveIngredient: "cephalexin",
		Category:         CategoryAntibiotic,
		CommonDosages:    []string{"250mg", "500mg", "1000mg"},
		SearchTerms:      []string{"cefaleksyna", "cephalexin", "keflex", "ospexin", "lexin", "ceporex"},
	},
	{
		ID:               "erythromycin",
		Name:             "Erytromycyna",
		ActiveIngredient: "erythromycin",
		Category:         CategoryAntibiotic,
		CommonDosages:    []string{"250mg", "500mg"},
		SearchTerms:      []string{"erytromycyna", "erythromycin", "erycin", "erythrocin", "sinerit", "ilosone"},
	},
	{
		ID:               "clindamycin",
		Name:             "Klindamycyna",
		ActiveIngredient: "clindamycin",
		Category:         CategoryAntibiotic,
		CommonDosages:    []string{"150mg", "300mg", "600mg"},
		SearchTerms:      []string{"klindamycyna", "clindamycin", "dalacin", "cleocin", "clindacin", "sobelin"},
	},
	{
		ID:               "trimethoprim-sulfamethoxazole",
		Name:             "Kotrimoksazol",
		ActiveIngredient: "trimethoprim + sulfamethoxazole",
		Category:         CategoryAntibiotic,
		CommonDosages:    []string{"400mg+80mg", "800mg+160mg"},
		SearchTerms:      []string{"kotrimoksazol", "bactrim", "biseptol", "sumetrolim", "septrin", "berlocid"},
	},

	// Leki przeciwbólowe - rozszerzenie
	{
		ID:               "naproxen",
		Name:             "Naproksen",
		ActiveIngredient: "naproxen",
		Category:         CategoryNSAID,
		CommonDosages:    []string{"220mg", "250mg", "500mg"},
		SearchTerms:      []string{"naproksen", "naproxen", "nalgesin", "flanax", "aleve", "proxen"},
	},
	{
		ID:               "piroxicam",
		Name:             "Piroksikam",
		ActiveIngredient: "piroxicam",
		Category:         CategoryNSAID,
		CommonDosages:    []string{"10mg", "20mg"},
		SearchTerms:      []string{"piroksikam", "piroxicam", "feldene", "reufen", "flogene", "roxicam"},
	},
	{
		ID:               "meloxicam",
		Name:             "Meloksikam",
		ActiveIngredient: "meloxicam",
		Category:         CategoryNSAID,
		CommonDosages:    []string{"7.5mg", "15mg"},
		SearchTerms:      []string{"meloksikam", "meloxicam", "movalis", "arthrex", "mobic", "melox"},
	},
	{
		ID:               "nimesulide",
		Name:             "Nimesulid",
		ActiveIngredient: "nimesulide",
		Category:         CategoryNSAID,
		CommonDosages:    []string{"100mg"},
		SearchTerms:      []string{"nimesulid", "nimesulide", "nimed", "aulin", "mesulid", "sulidin"},
	},
	{
		ID:               "metamizole",
		Name:             "Metamizol",
		ActiveIngredient: "metamizole",
		Category:         CategoryAnalgesic,
		CommonDosages:    []string{"500mg"},
		SearchTerms:      []string{"metamizol", "metamizole", "pyralgina", "analgin", "piramidon", "novaminsulfon"},
	},
	{
		ID:               "codeine",
		Name:             "Kodeina",
		ActiveIngredient: "codeine",
		Category:         CategoryOpioid,
		CommonDosages:    []string{"15mg", "30mg", "60mg"},
		SearchTerms:      []string{"kodeina", "codeine", "solpadeine", "codipar", "codipront", "tussoret"},
	},

	// Leki antyhistaminowe - rozszerzenie
	{
		ID:               "fexofenadine",
		Name:             "Feksofenadyna",
		ActiveIngredient: "fexofenadine",
		Category:         CategoryAntihistamine,
		CommonDosages:    []string{"120mg", "180mg"},
		SearchTerms:      []string{"feksofenadyna", "fexofenadine", "allegra", "telfast", "fexofast", "altiva"},
	},
	{
		ID:               "desloratadine",
		Name:             "Desloratadyna",
		ActiveIngredient: "desloratadine",
		Category:         CategoryAntihistamine,
		CommonDosages:    []string{"5mg"},
		SearchTerms:      []string{"desloratadyna", "desloratadine", "aerius", "azomyr", "dasselta", "deslorina"},
	},
	{
		ID:               "levocetirizine",
		Name:             "Lewocetyryzyna",
		ActiveIngredient: "levocetirizine",
		Category:         CategoryAntihistamine,
		CommonDosages:    []string{"5mg"},
		SearchTerms:      []string{"lewocetyryzyna", "levocetirizine", "xyzal", "zenaro", "alairgix", "suprastinex"},
	},
	{
		ID:               "chlorpheniramine",
		Name:             "Chlorfeniramin",
		ActiveIngredient: "chlorpheniramine",
		Category:         CategoryAntihistamine,
		CommonDosages:    []string{"4mg"},
		SearchTerms:      []string{"chlorfeniramin", "chlorpheniramine", "polaramine", "histex", "allergina", "feniramina"},
	},

	// Leki na kaszel i przeziębienie - rozszerzenie
	{
		ID:               "guaifenesin",
		Name:             "Gwaifenezyna",
		ActiveIngredient: "guaifenesin",
		Category:         CategoryMucolytic,
		CommonDosages:    []string{"200mg", "400mg"},
		SearchTerms:      []string{"gwaifenezyna", "guaifenesin", "mucinex", "bisolvon", "robitussin", "expectorant"},
	},
	{
		ID:               "bromhexine",
		Name:             "Bromheksyna",
		ActiveIngredient: "bromhexine",
		Category:         CategoryMucolytic,
		CommonDosages:    []string{"8mg", "12mg"},
		SearchTerms:      []string{"bromheksyna", "bromhexine", "bisolvon", "solmux", "mucofar", "mucospas"},
	},
	{
		ID:               "ambroxol",
		Name:             "Ambroksol",
		ActiveIngredient: "ambroxol",
		Category:         CategoryMucolytic,
		CommonDosages:    []string{"15mg", "30mg"},
		SearchTerms:      []string{"ambroksol", "ambroxol", "mucosolvan", "flavamed", "mucobron", "halixol"},
	},

	// Witaminy i suplementy - rozszerzenie
	{
		ID:               "calcium-carbonate",
		Name:             "Węglan wapnia",
		ActiveIngredient: "calcium carbonate",
		Category:         CategoryVitamin,
		CommonDosages:    []string{"500mg", "1000mg", "1500mg"},
		SearchTerms:      []string{"węglan wapnia", "calcium", "wapń", "calcium carbonate", "calcid", "calperos"},
	},
	{
		ID:               "magnesium",
		Name:             "Magnez",
		ActiveIngredient: "magnesium",
		Category:         CategoryVitamin,
		CommonDosages:    []string{"200mg", "300mg", "400mg"},
		SearchTerms:      []string{"magnez", "magnesium", "magne", "magvit", "magnezin", "slow-mag"},
	},
	{
		ID:               "iron",
		Name:             "Żelazo",
		ActiveIngredient: "iron",
		Category:         CategoryVitamin,
		CommonDosages:    []string{"14mg", "28mg", "65mg"},
		SearchTerms:      []string{"żelazo", "iron", "ferro", "tardyferon", "sorbifer", "aktiferrin"},
	},
	{
		ID:               "vitamin-c",
		Name:             "Witamina C",
		ActiveIngredient: "ascorbic acid",
		Category:         CategoryVitamin,
		CommonDosages:    []string{"500mg", "1000mg"},
		SearchTerms:      []string{"witamina c", "vitamin c", "kwas askorbinowy", "ascorbic acid", "celaskon", "acifort"},
	},
	{
		ID:               "vitamin-e",
		Name:             "Witamina E",
		ActiveIngredient: "tocopherol",
		Category:         CategoryVitamin,
		CommonDosages:    []string{"100j.m.", "200j.m.", "400j.m."},
		SearchTerms:      []string{"witamina e", "vitamin e", "tocopherol", "tokoferol", "ephynal", "evitol"},
	},
	{
		ID:               "omega3",
		Name:             "Omega-3",
		ActiveIngredient: "omega-3 fatty acids",
		Category:         CategoryVitamin,
		CommonDosages:    []string{"500mg", "1000mg"},
		SearchTerms:      []string{"omega 3", "omega-3", "kwasy omega", "rybii tłuszcz", "fish oil", "möller"},
	},

	// Leki na tarczycę - rozszerzenie
	{
		ID:               "propylthiouracil",
		Name:             "Propylotiouracyl",
		ActiveIngredient: "propylthiouracil",
		Category:         CategoryAntithyroid,
		CommonDosages:    []string{"50mg", "100mg"},
		SearchTerms:      []string{"propylotiouracyl", "propylthiouracil", "ptu", "propycil"},
	},

	// Leki na układ moczowy
	{
		ID:               "tamsulosin",
		Name:             "Tamsulosyna",
		ActiveIngredient: "tamsulosin",
		Category:         CategoryProstate,
		CommonDosages:    []string{"0.2mg", "0.4mg"},
		SearchTerms:      []string{"tamsulosyna", "tamsulosin", "omnic", "flomax", "pradif", "urimax"},
	},
	{
		ID:               "finasteride",
		Name:             "Finasteryd",
		ActiveIngredient: "finasteride",
		Category:         CategoryProstate,
		CommonDosages:    []string{"1mg", "5mg"},
		SearchTerms:      []string{"finasteryd", "finasteride", "proscar", "propecia", "penester", "finpros"},
	},
	{
		ID:               "doxazosin",
		Name:             "Doksazosyna",
		ActiveIngredient: "doxazosin",
		Category:         CategoryProstate,
		CommonDosages:    []string{"1mg", "2mg", "4mg", "8mg"},
		SearchTerms:      []string{"doksazosyna", "doxazosin", "cardura", "doxar", "alfadil", "doxura"},
	},

	// Leki na skórę
	{
		ID:               "hydrocortisone",
		Name:             "Hydrokortyzon",
		ActiveIngredient: "hydrocortisone",
		Category:         CategoryTopicalSteroid,
		CommonDosages:    []string{"0.5%", "1%"},
		SearchTerms:      []string{"hydrokortyzon", "hydrocortisone", "locoid", "cortef", "hydrocortison", "cortisol"},
	},
	{
		ID:               "betamethasone",
		Name:             "Betametazon",
		ActiveIngredient: "betamethasone",
		Category:         CategoryTopicalSteroid,
		CommonDosages:    []string{"0.05%", "0.1%"},
		SearchTerms:      []string{"betametazon", "betamethasone", "diprosone", "betnovate", "celestamine", "belogent"},
	},

	// Leki okulistyczne
	{
		ID:               "timolol-eye",
		Name:             "Timolol krople do oczu",
		ActiveIngredient: "timolol",
		Category:         CategoryOphthalmic,
		CommonDosages:    []string{"0.25%", "0.5%"},
		SearchTerms:      []string{"timolol krople do oczu", "timolol", "krople do oczu", "timpilo", "nyolol", "timoptol", "cusimolol"},
	},
	{
		ID:               "artificial-tears",
		Name:             "Sztuczne łzy",
		ActiveIngredient: "hypromellose",
		Category:         CategoryOphthalmic,
		CommonDosages:    []string{"0.3%", "0.5%"},
		SearchTerms:      []string{"sztuczne łzy", "artificial tears", "lacrisifi", "hycosan", "vidisic", "artelac"},
	},

	// Leki ginekologiczne
	{
		ID:               "clotrimazole",
		Name:             "Klotrimazol",
		ActiveIngredient: "clotrimazole",
		Category:         CategoryAntifungal,
		CommonDosages:    []string{"1%", "100mg", "500mg"},
		SearchTerms:      []string{"klotrimazol", "clotrimazole", "canesten", "antifungol", "kandyzol", "fungizid"},
	},
	{
		ID:               "metronidazole",
		Name:             "Metronidazol",
		ActiveIngredient: "metronidazole",
		Category:         CategoryAntibiotic,
		CommonDosages:    []string{"250mg", "500mg"},
		SearchTerms:      []string{"metronidazol", "metronidazole", "flagyl", "entizol", "clont", "metrogyl"},
	},

	// Leki na jelita
	{
		ID:               "loperamide",
		Name:             "Loperamid",
		ActiveIngredient: "loperamide",
		Category:         CategoryAntidiarrheal,
		CommonDosages:    []string{"2mg"},
		SearchTerms:      []string{"loperamid", "loperamide", "imodium", "stoperan", "lopedium", "diarstop"},
	},
	{
		ID:               "diosmectite",
		Name:             "Diosmektyt",
		ActiveIngredient: "diosmectite",
		Category:         CategoryAntidiarrheal,
		CommonDosages:    []string{"3g"},
		SearchTerms:      []string{"diosmektyt", "diosmectite", "smecta", "neo-diastop", "diastop", "ecosmectin"},
	},
	{
		ID:               "simethicone",
		Name:             "Symetikon",
		ActiveIngredient: "simethicone",
		Category:         CategoryAntiflatulent,
		CommonDosages:    []string{"40mg", "80mg"},
		SearchTerms:      []string{"symetikon", "simethicone", "espumisan", "bobotic", "sab simplex", "simicol"},
	},

	// Leki na bezsenność
	{
		ID:               "zolpidem",
		Name:             "Zolpidem",
		ActiveIngredient: "zolpidem",
		Category:         CategoryHypnotic,
		CommonDosages:    []string{"5mg", "10mg"},
		SearchTerms:      []string{"zolpidem", "stilnox", "hypnogen", "sanval", "ambien", "ivadal"},
	},
	{
		ID:               "zopiclone",
		Name:             "Zopiklon",
		ActiveIngredient: "zopiclone",
		Category:         CategoryHypnotic,
		CommonDosages:    []string{"3.75mg", "7.5mg"},
		SearchTerms:      []string{"zopiklon", "zopiclone", "imovane", "somnosan", "zimovane", "zopitin"},
	},

	// Dodatkowe leki różne
	{
		ID:               "allopurinol",
		Name:             "Allopurynol",
		ActiveIngredient: "allopurinol",
		Category:         CategoryAntigout,
		CommonDosages:    []string{"100mg", "300mg"},
		SearchTerms:      []string{"allopurynol", "allopurinol", "milurit", "zyloric", "allopur", "purinol"},
	},
	{
		ID:               "colchicine",
		Name:             "Kolchicyna",
		ActiveIngredient: "colchicine",
		Category:         CategoryAntigout,
		CommonDosages:    []string{"0.5mg", "1mg"},
		SearchTerms:      []string{"kolchicyna", "colchicine", "colcrys", "colchimax", "goutnil"},
	},
}
