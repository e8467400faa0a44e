package healthdata

import (
	"fmt"
	"strings"

	"swasthya-ai/internal/domain"
)

var welcomeText = domain.LocalizedText{
	En: "Hello! I'm SwasthyaAI, your multilingual health assistant. I can help you with health queries, vaccination schedules, outbreak alerts, and preventive care tips. How can I assist you today?",
	Hi: "नमस्ते! मैं SwasthyaAI हूं, आपका बहुभाषी स्वास्थ्य सहायक। मैं आपको स्वास्थ्य प्रश्न, टीकाकरण कार्यक्रम, प्रकोप अलर्ट और निवारक देखभाल युक्तियों में मदद कर सकता हूं। आज मैं आपकी कैसे सहायता कर सकता हूं?",
	Te: "నమస్కారం! నేను SwasthyaAI, మీ బహుభాషా ఆరోగ్య సహాయకుడిని. నేను మీకు ఆరోగ్య ప్రశ్నలు, టీకా షెడ్యూల్స్, వ్యాప్తి హెచ్చరికలు మరియు నివారణ సంరక్షణ చిట్కాలతో సహాయం చేయగలను. ఈరోజు నేను మీకు ఎలా సహాయం చేయగలను?",
}

// %s = nombre capturado
var greetingTemplate = domain.LocalizedText{
	En: "Nice to meet you, %s! I've saved your information. How can I help you with your health queries?",
	Hi: "आपसे मिलकर खुशी हुई, %s! मैंने आपकी जानकारी सहेज ली है। मैं आपके स्वास्थ्य प्रश्नों में कैसे मदद कर सकता हूं?",
	Te: "మిమ్మల్ని కలవడం ఆనందంగా ఉంది, %s! నేను మీ సమాచారాన్ని సేవ్ చేశాను. మీ ఆరోగ్య ప్రశ్నలతో నేను ఎలా సహాయం చేయగలను?",
}

// %[1]d = edad, %[2]s = lista de vacunas
var vaccinationTemplate = domain.LocalizedText{
	En: "Based on the age %[1]d, here are important vaccinations: %[2]s. Please consult your pediatrician for the complete schedule.",
	Hi: "%[1]d वर्ष की आयु के आधार पर, यहां महत्वपूर्ण टीकाकरण हैं: %[2]s। पूर्ण कार्यक्रम के लिए कृपया अपने बाल रोग विशेषज्ञ से सलाह लें।",
	Te: "%[1]d వయస్సు ఆధారంగా, ఇవి ముఖ్యమైన టీకాలు: %[2]s. పూర్తి షెడ్యూల్ కోసం దయచేసి మీ పీడియాట్రిషియన్‌ని సంప్రదించండి.",
}

var alertsHeader = domain.LocalizedText{
	En: "Current health alerts:\n",
	Hi: "वर्तमान स्वास्थ्य अलर्ट:\n",
	Te: "ప్రస్తుత ఆరోగ్య హెచ్చరికలు:\n",
}

var fallbackText = domain.LocalizedText{
	En: "I'm here to help with health-related questions. You can ask me about symptoms, prevention, vaccination schedules, or outbreak alerts. Try asking about malaria, dengue, healthy diet, or vaccination schedules.",
	Hi: "मैं स्वास्थ्य संबंधी प्रश्नों में मदद के लिए यहां हूं। आप मुझसे लक्षण, रोकथाम, टीकाकरण कार्यक्रम या प्रकोप अलर्ट के बारे में पूछ सकते हैं। मलेरिया, डेंगू, स्वस्थ आहार या टीकाकरण कार्यक्रम के बारे में पूछने का प्रयास करें।",
	Te: "నేను ఆరోగ్య సంబంధిత ప్రశ్నలతో సహాయం చేయడానికి ఇక్కడ ఉన్నాను. మీరు నన్ను లక్షణాలు, నివారణ, టీకా షెడ్యూల్స్ లేదా వ్యాప్తి హెచ్చరికల గురించి అడగవచ్చు. మలేరియా, డెంగీ, ఆరోగ్యకర ఆహారం లేదా టీకా షెడ్యూల్స్ గురించి అడగడానికి ప్రయత్నించండి.",
}

// %s = respuestas elegidas
var closingTemplate = domain.LocalizedText{
	En: "Thank you for answering. You reported: %s.",
	Hi: "उत्तर देने के लिए धन्यवाद। आपने बताया: %s।",
	Te: "సమాధానం ఇచ్చినందుకు ధన్యవాదాలు. మీరు తెలిపినవి: %s.",
}

// Welcome devuelve el saludo inicial del asistente.
func Welcome(lang domain.Language) string {
	return welcomeText.In(lang)
}

func Greeting(lang domain.Language, name string) string {
	return fmt.Sprintf(greetingTemplate.In(lang), name)
}

// VaccinationAdvice formatea la recomendación con cada vacuna como "<vacuna> (<edad>)".
func VaccinationAdvice(lang domain.Language, age int, vaccines []domain.VaccinationEntry) string {
	items := make([]string, 0, len(vaccines))
	for _, v := range vaccines {
		items = append(items, fmt.Sprintf("%s (%s)", v.Vaccine, v.Age))
	}
	return fmt.Sprintf(vaccinationTemplate.In(lang), age, strings.Join(items, ", "))
}

// AlertsSummary lista una alerta por línea bajo la cabecera localizada.
func AlertsSummary(lang domain.Language, alerts []domain.OutbreakAlert) string {
	lines := make([]string, 0, len(alerts))
	for _, a := range alerts {
		lines = append(lines, fmt.Sprintf("%s in %s - %s", a.Disease, a.Location, a.Description))
	}
	return alertsHeader.In(lang) + strings.Join(lines, "\n")
}

func Fallback(lang domain.Language) string {
	return fallbackText.In(lang)
}

// Closing cierra el cuestionario resumiendo las respuestas y vuelve al saludo general.
func Closing(lang domain.Language, answers []string) string {
	if len(answers) == 0 {
		return Welcome(lang)
	}
	summary := fmt.Sprintf(closingTemplate.In(lang), strings.Join(answers, ", "))
	return summary + "\n" + Welcome(lang)
}
