package i18n

// Language describes one entry of the fixed selector list.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
	Flag       string `json:"flag"`
}

// Languages returns the supported language set in selector order.
func Languages() []Language {
	return []Language{
		{Code: "en", Name: "English", NativeName: "English", Flag: "🇺🇸"},
		{Code: "hi", Name: "Hindi", NativeName: "हिंदी", Flag: "🇮🇳"},
		{Code: "kn", Name: "Kannada", NativeName: "ಕನ್ನಡ", Flag: "🇮🇳"},
		{Code: "ta", Name: "Tamil", NativeName: "தமிழ்", Flag: "🇮🇳"},
		{Code: "te", Name: "Telugu", NativeName: "తెలుగు", Flag: "🇮🇳"},
		{Code: "mr", Name: "Marathi", NativeName: "मराठी", Flag: "🇮🇳"},
		{Code: "gu", Name: "Gujarati", NativeName: "ગુજરાતી", Flag: "🇮🇳"},
		{Code: "bn", Name: "Bengali", NativeName: "বাংলা", Flag: "🇮🇳"},
		{Code: "pa", Name: "Punjabi", NativeName: "ਪੰਜਾਬੀ", Flag: "🇮🇳"},
		{Code: "ml", Name: "Malayalam", NativeName: "മലയാളം", Flag: "🇮🇳"},
	}
}

// IsSupported reports whether code is in the fixed language set.
func IsSupported(code string) bool {
	for _, lang := range Languages() {
		if lang.Code == code {
			return true
		}
	}
	return false
}

// SpeechLocale maps a language code to the locale hint used by the speech
// capabilities. Unknown codes map to Indian English.
func SpeechLocale(code string) string {
	switch code {
	case "hi":
		return "hi-IN"
	case "kn":
		return "kn-IN"
	case "ta":
		return "ta-IN"
	case "te":
		return "te-IN"
	case "mr":
		return "mr-IN"
	case "gu":
		return "gu-IN"
	case "bn":
		return "bn-IN"
	case "pa":
		return "pa-IN"
	case "ml":
		return "ml-IN"
	default:
		return "en-IN"
	}
}

// Translate resolves a known UI string to language code. Unknown strings or
// languages fall back to the English source text.
func Translate(text, code string) string {
	if code == "" || code == "en" {
		return text
	}
	byLang, ok := translations[text]
	if !ok {
		return text
	}
	translated, ok := byLang[code]
	if !ok {
		return text
	}
	return translated
}

var translations = map[string]map[string]string{
	"Home": {
		"hi": "होम", "kn": "ಮನೆ", "ta": "வீடு", "te": "ఇల్లు", "mr": "मुख्यपृष्ठ",
		"gu": "ઘર", "bn": "বাড়ি", "pa": "ਘਰ", "ml": "വീട്",
	},
	"AI Assistant": {
		"hi": "एआई सहायक", "kn": "ಎಐ ಸಹಾಯಕ", "ta": "AI உதவியாளர்", "te": "AI సహాయకుడు",
		"mr": "एआय सहाय्यक", "gu": "AI સહાયક", "bn": "AI সহায়ক", "pa": "AI ਸਹਾਇਕ", "ml": "AI സഹായി",
	},
	"Alerts": {
		"hi": "अलर्ट", "kn": "ಎಚ್ಚರಿಕೆಗಳು", "ta": "எச்சரிக்கைகள்", "te": "హెచ్చరికలు",
		"mr": "सावधानता", "gu": "ચેતવણીઓ", "bn": "সতর্কতা", "pa": "ਚੇਤਾਵਨੀਆਂ", "ml": "മുന്നറിയിപ്പുകൾ",
	},
	"Emergency": {
		"hi": "आपातकाल", "kn": "ತುರ್ತುಸ್ಥಿತಿ", "ta": "அவசரநிலை", "te": "అత్యవసర",
		"mr": "आपत्काळ", "gu": "કટોકટી", "bn": "জরুরি", "pa": "ਐਮਰਜੈਂਸੀ", "ml": "അടിയന്തിര",
	},
	"Online": {
		"hi": "ऑनलाइन", "kn": "ಆನ್‌ಲೈನ್", "ta": "ஆன்லைன்", "te": "ఆన్‌లైన్",
		"mr": "ऑनलाइन", "gu": "ઓનલાઇન", "bn": "অনলাইন", "pa": "ਔਨਲਾਇਨ", "ml": "ഓൺലൈൻ",
	},
	"Offline": {
		"hi": "ऑफलाइन", "kn": "ಆಫ್‌ಲೈನ್", "ta": "ஆஃப்லைன்", "te": "ఆఫ్‌లైన్",
		"mr": "ऑफलाइन", "gu": "ઓફલાઇન", "bn": "অফলাইন", "pa": "ਔਫਲਾਇਨ", "ml": "ഓഫ്‌ലൈൻ",
	},
	"AI Emergency Assistant": {
		"hi": "एआई आपातकालीन सहायक", "kn": "ಎಐ ತುರ್ತು ಸಹಾಯಕ", "ta": "AI அவசர உதவியாளர்",
		"te": "AI అత్యవసర సహాయకుడు", "mr": "एआय आपत्कालीन सहाय्यक", "gu": "AI કટોકટી સહાયક",
		"bn": "AI জরুরি সহায়ক", "pa": "AI ਐਮਰਜੈਂਸੀ ਸਹਾਇਕ", "ml": "AI അടിയന്തിര സഹായി",
	},
	"Type your emergency question...": {
		"hi": "अपना आपातकालीन प्रश्न लिखें...", "kn": "ನಿಮ್ಮ ತುರ್ತು ಪ್ರಶ್ನೆಯನ್ನು ಟೈಪ್ ಮಾಡಿ...",
		"ta": "உங்கள் அவசர கேள்வியை தட்டச்சு செய்யுங்கள்...", "te": "మీ అత్యవసర ప్రశ్నను టైప్ చేయండి...",
		"mr": "तुमचा आपत्कालीन प्रश्न टाइप करा...", "gu": "તમારો કટોકટીનો પ્રશ્ન ટાઇપ કરો...",
		"bn": "আপনার জরুরি প্রশ্ন টাইপ করুন...", "pa": "ਆਪਣਾ ਐਮਰਜੈਂਸੀ ਸਵਾਲ ਟਾਈਪ ਕਰੋ...",
		"ml": "നിങ്ങളുടെ അടിയന്തിര ചോദ്യം ടൈപ്പ് ചെയ്യുക...",
	},
	"Start a conversation with CIVI-SHIELD AI": {
		"hi": "CIVI-SHIELD AI के साथ बातचीत शुरू करें", "kn": "CIVI-SHIELD AI ಯೊಂದಿಗೆ ಸಂಭಾಷಣೆ ಪ್ರಾರಂಭಿಸಿ",
		"ta": "CIVI-SHIELD AI உடன் உரையாடலை தொடங்குங்கள்", "te": "CIVI-SHIELD AI తో సంభాషణను ప్రారంభించండి",
		"mr": "CIVI-SHIELD AI सोबत संभाषण सुरू करा", "gu": "CIVI-SHIELD AI સાથે વાતચીત શરૂ કરો",
		"bn": "CIVI-SHIELD AI এর সাথে কথোপকথন শুরু করুন", "pa": "CIVI-SHIELD AI ਨਾਲ ਗੱਲਬਾਤ ਸ਼ੁਰੂ ਕਰੋ",
		"ml": "CIVI-SHIELD AI യുമായി സംഭാഷണം ആരംഭിക്കുക",
	},
	"Ask about emergencies, first aid, or legal rights": {
		"hi": "आपातकाल, प्राथमिक चिकित्सा, या कानूनी अधिकारों के बारे में पूछें",
		"kn": "ತುರ್ತುಸ್ಥಿತಿ, ಪ್ರಥಮ ಚಿಕಿತ್ಸೆ ಅಥವಾ ಕಾನೂನು ಹಕ್ಕುಗಳ ಬಗ್ಗೆ ಕೇಳಿ",
		"ta": "அவசரநிலைகள், முதலுதவி அல்லது சட்ட உரிமைகள் பற்றி கேளுங்கள்",
		"te": "అత్యవసర పరిస్థితులు, ప్రథమ చికిత్స లేదా చట్టపరమైన హక్కుల గురించి అడగండి",
		"mr": "आपत्काळ, प्राथमिक उपचार किंवा कायदेशीर हक्कांबद्दल विचारा",
		"gu": "કટોકટી, પ્રાથમિક સારવાર અથવા કાનૂની અધિકારો વિશે પૂછો",
		"bn": "জরুরি অবস্থা, প্রাথমিক চিকিৎসা বা আইনি অধিকার সম্পর্কে জিজ্ঞাসা করুন",
		"pa": "ਐਮਰਜੈਂਸੀ, ਫਸਟ ਏਡ, ਜਾਂ ਕਾਨੂੰਨੀ ਅਧਿਕਾਰਾਂ ਬਾਰੇ ਪੁੱਛੋ",
		"ml": "അടിയന്തിര സാഹചര്യങ്ങൾ, പ്രഥമശുശ്രൂഷ അല്ലെങ്കിൽ നിയമപരമായ അവകാശങ്ങൾ കുറിച്ച് ചോദിക്കുക",
	},
	"Emergency Officer is typing...": {
		"hi": "आपातकालीन अधिकारी टाइप कर रहे हैं...", "kn": "ತುರ್ತು ಅಧಿಕಾರಿ ಟೈಪ್ ಮಾಡುತ್ತಿದ್ದಾರೆ...",
		"ta": "அவசர அதிகாரி தட்டச்சு செய்கிறார்...", "te": "అత్యవసర అధికారి టైప్ చేస్తున్నారు...",
		"mr": "आपत्कालीन अधिकारी टाइप करत आहेत...", "gu": "કટોકટી અધિકારી ટાઇપ કરી રહ્યા છે...",
		"bn": "জরুরি কর্মকর্তা টাইপ করছেন...", "pa": "ਐਮਰਜੈਂਸੀ ਅਫਸਰ ਟਾਈਪ ਕਰ ਰਿਹਾ ਹੈ...",
		"ml": "എമർജൻസി ഓഫീസർ ടൈപ്പ് ചെയ്യുന്നു...",
	},
	"Emergency Contacts": {
		"hi": "आपातकालीन संपर्क", "kn": "ತುರ್ತು ಸಂಪರ್ಕಗಳು", "ta": "அவசர தொடர்புகள்",
		"te": "అత్యవసర పరిచయాలు", "mr": "आपत्कालीन संपर्क", "gu": "કટોકટી સંપર્કો",
		"bn": "জরুরি যোগাযোগ", "pa": "ਐਮਰਜੈਂਸੀ ਸੰਪਰਕ", "ml": "അടിയന്തിര ബന്ധങ്ങൾ",
	},
}
