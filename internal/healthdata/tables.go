package healthdata

import "swasthya-ai/internal/domain"

var vaccinationSchedule = []domain.VaccinationEntry{
	{Vaccine: "BCG", Age: "At birth", Description: "Protection against tuberculosis"},
	{Vaccine: "Hepatitis B", Age: "At birth, 6 weeks, 14 weeks", Description: "Protection against Hepatitis B"},
	{Vaccine: "OPV", Age: "6 weeks, 10 weeks, 14 weeks", Description: "Oral Polio Vaccine"},
	{Vaccine: "DPT", Age: "6 weeks, 10 weeks, 14 weeks", Description: "Diphtheria, Pertussis, Tetanus"},
	{Vaccine: "Measles", Age: "9 months", Description: "Protection against measles"},
	{Vaccine: "MMR", Age: "12-15 months", Description: "Measles, Mumps, Rubella"},
	{Vaccine: "Chickenpox", Age: "12-18 months", Description: "Protection against chickenpox"},
	{Vaccine: "Typhoid", Age: "2 years", Description: "Protection against typhoid fever"},
}

var outbreakAlerts = []domain.OutbreakAlert{
	{
		Disease:     "Dengue",
		Location:    "Guntur District",
		Severity:    domain.SeverityHigh,
		Date:        "2024-01-15",
		Description: "⚠️ High dengue cases reported. Take preventive measures.",
	},
	{
		Disease:     "Malaria",
		Location:    "Visakhapatnam",
		Severity:    domain.SeverityMedium,
		Date:        "2024-01-10",
		Description: "🦟 Increased malaria cases. Use mosquito nets and repellents.",
	},
	{
		Disease:     "Chikungunya",
		Location:    "Hyderabad",
		Severity:    domain.SeverityLow,
		Date:        "2024-01-08",
		Description: "⚡ Few chikungunya cases detected. Stay alert.",
	},
}

var diseaseInfo = []domain.DiseaseInfo{
	{
		Name:       "Malaria",
		Symptoms:   []string{"High fever", "Chills", "Headache", "Nausea", "Vomiting"},
		Prevention: []string{"Use mosquito nets", "Apply repellents", "Remove stagnant water", "Wear full sleeves"},
		Treatment:  "Consult doctor immediately for antimalarial medication",
	},
	{
		Name:       "Dengue",
		Symptoms:   []string{"High fever", "Severe headache", "Joint pain", "Rash", "Low platelet count"},
		Prevention: []string{"Remove stagnant water", "Use mosquito repellents", "Wear protective clothing"},
		Treatment:  "Rest, fluids, paracetamol. Avoid aspirin. Consult doctor.",
	},
	{
		Name:       "Diabetes",
		Symptoms:   []string{"Frequent urination", "Excessive thirst", "Fatigue", "Blurred vision"},
		Prevention: []string{"Regular exercise", "Healthy diet", "Weight management", "Regular checkups"},
		Treatment:  "Blood sugar monitoring, medication, lifestyle changes",
	},
}

// Las palabras clave en inglés van primero y en el orden original; las de escritura nativa
// permiten que las respuestas rápidas localizadas encuentren su entrada.
var keywordResponses = []domain.KeywordResponse{
	{
		Keywords: []string{"malaria", "symptoms", "fever", "मलेरिया", "लक्षण", "बुखार", "మలేరియా", "లక్షణాలు", "జ్వరం"},
		Response: domain.LocalizedText{
			En: "Malaria symptoms include high fever, chills, headache, nausea, and vomiting. Please consult a doctor if you experience these symptoms.",
			Hi: "मलेरिया के लक्षण हैं तेज बुखार, ठंड लगना, सिरदर्द, मतली और उल्टी। यदि आपको ये लक्षण दिखाई दें तो कृपया डॉक्टर से संपर्क करें।",
			Te: "మలేరియా లక్షణాలు అధిక జ్వరం, వణుకు, తలనొప్పి, వికారం మరియు వాంతులు. ఈ లక్షణాలు కనిపిస్తే దయచేసి వైద్యుడిని సంప్రదించండి.",
		},
	},
	{
		Keywords: []string{"dengue", "prevention", "mosquito", "डेंगू", "बचाव", "मच्छर", "డెంగీ", "నివారణ", "దోమ"},
		Response: domain.LocalizedText{
			En: "To prevent dengue: Remove stagnant water, use mosquito repellents, wear protective clothing, and maintain clean surroundings.",
			Hi: "डेंगू से बचाव के लिए: स्थिर पानी हटाएं, मच्छर भगाने वाली दवा का उपयोग करें, सुरक्षात्मक कपड़े पहनें और साफ-सुथरा वातावरण बनाए रखें।",
			Te: "డెంగీ నివారణ కోసం: నిలబడిన నీటిని తొలగించండి, దోమల వికర్షణలను ఉపయోగించండి, రక్షణ దుస్తులు ధరించండి మరియు పరిసర ప్రాంతాలను శుభ్రంగా ఉంచండి.",
		},
	},
	{
		Keywords: []string{"healthy", "diet", "nutrition", "स्वस्थ", "आहार", "ఆరోగ్యకర", "ఆహారం"},
		Response: domain.LocalizedText{
			En: "A healthy diet includes fresh fruits, vegetables, whole grains, lean proteins, and plenty of water. Limit processed foods and sugar.",
			Hi: "स्वस्थ आहार में ताजे फल, सब्जियां, साबुत अनाज, दुबला प्रोटीन और भरपूर पानी शामिल है। प्रसंस्कृत खाद्य पदार्थ और चीनी सीमित करें।",
			Te: "ఆరోగ్యకరమైన ఆహారంలో తాజా పండ్లు, కూరగాయలు, తృణధాన్యాలు, కొవ్వు లేని ప్రోటీన్లు మరియు పుష్కలంగా నీరు ఉంటాయి. ప్రాసెస్ చేసిన ఆహారాలు మరియు చక్కెరను పరిమితం చేయండి.",
		},
	},
	{
		Keywords: []string{"vaccination", "child", "schedule", "टीकाकरण", "बच्चे", "టీకా", "పిల్లల"},
		Response: domain.LocalizedText{
			En: "Children need vaccinations at birth (BCG, Hepatitis B), 6 weeks (OPV, DPT), 9 months (Measles), and more. Please share your child's age for specific recommendations.",
			Hi: "बच्चों को जन्म के समय (बीसीजी, हेपेटाइटिस बी), 6 सप्ताह (ओपीवी, डीपीटी), 9 महीने (खसरा) और अधिक पर टीकाकरण की आवश्यकता होती है। विशिष्ट सिफारिशों के लिए कृपया अपने बच्चे की उम्र साझा करें।",
			Te: "పిల్లలకు జన్మ సమయంలో (BCG, హెపటైటిస్ B), 6 వారాలలో (OPV, DPT), 9 నెలలలో (మీజిల్స్) మరియు మరిన్ని టీకాలు అవసరం. నిర్దిష్ట సిఫార్సుల కోసం దయచేసి మీ పిల్లల వయస్సును పంచుకోండి.",
		},
	},
}

var quickReplies = []domain.LocalizedText{
	{En: "Malaria symptoms", Hi: "मलेरिया के लक्षण", Te: "మలేరియా లక్షణాలు"},
	{En: "Dengue prevention", Hi: "डेंगू से बचाव", Te: "డెంగీ నివారణ"},
	{En: "Healthy diet", Hi: "स्वस्थ आहार", Te: "ఆరోగ్యకర ఆహారం"},
	{En: "Vaccination schedule", Hi: "टीकाकरण अनुसूची", Te: "టీకా షెడ్యూల్"},
	{En: "Emergency help", Hi: "आपातकालीन सहायता", Te: "అత్యవసర సహాయం"},
}

var symptomQuestions = []domain.Question{
	{
		ID: "q1",
		Prompt: domain.LocalizedText{
			En: "What is your primary symptom?",
			Hi: "आपका प्राथमिक लक्षण क्या है?",
			Te: "మీ ప్రాధమిక లక్షణం ఏమిటి?",
		},
		Options: []domain.Option{
			{ID: "fever", Text: domain.LocalizedText{En: "Fever", Hi: "बुखार", Te: "జ్వరం"}},
			{ID: "cough", Text: domain.LocalizedText{En: "Cough", Hi: "खांसी", Te: "దగ్గు"}},
			{ID: "headache", Text: domain.LocalizedText{En: "Headache", Hi: "सिरदर्द", Te: "తలనొప్పి"}},
			{ID: "fatigue", Text: domain.LocalizedText{En: "Fatigue", Hi: "थकान", Te: "అలసట"}},
		},
	},
	{
		ID: "q2",
		Prompt: domain.LocalizedText{
			En: "How long have you had this symptom?",
			Hi: "आपको यह लक्षण कितने समय से है?",
			Te: "మీకు ఈ లక్షణం ఎంతకాలంగా ఉంది?",
		},
		Options: []domain.Option{
			{ID: "less_than_a_day", Text: domain.LocalizedText{En: "Less than a day", Hi: "एक दिन से कम", Te: "ఒక రోజు కన్నా తక్కువ"}},
			{ID: "1_3_days", Text: domain.LocalizedText{En: "1-3 days", Hi: "1-3 दिन", Te: "1-3 రోజులు"}},
			{ID: "more_than_3_days", Text: domain.LocalizedText{En: "More than 3 days", Hi: "3 दिन से ज्यादा", Te: "3 రోజుల కన్నా ఎక్కువ"}},
		},
	},
	{
		ID: "q3",
		Prompt: domain.LocalizedText{
			En: "Are you experiencing any other symptoms?",
			Hi: "क्या आप किसी अन्य लक्षण का अनुभव कर रहे हैं?",
			Te: "మీరు ఏ ఇతర లక్షణాలను ఎదుర్కొంటున్నారు?",
		},
		Options: []domain.Option{
			{ID: "sore_throat", Text: domain.LocalizedText{En: "Sore throat", Hi: "गले में खराश", Te: "గొంతు మంట"}},
			{ID: "runny_nose", Text: domain.LocalizedText{En: "Runny nose", Hi: "बहती नाक", Te: "ముక్కు కారటం"}},
			{ID: "body_aches", Text: domain.LocalizedText{En: "Body aches", Hi: "बदन दर्द", Te: "శరీర నొప్పులు"}},
			{ID: "none", Text: domain.LocalizedText{En: "None of the above", Hi: "इनमे से कोई नहीं", Te: "పైవేవీ కావు"}},
		},
	},
}
