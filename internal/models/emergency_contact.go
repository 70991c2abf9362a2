package models

type EmergencyContact struct {
	Name        string `json:"name"`
	Number      string `json:"number"`
	Description string `json:"description"`
}

// EmergencyContacts возвращает список экстренных номеров
func EmergencyContacts() []EmergencyContact {
	return []EmergencyContact{
		{Name: "National Women Helpline", Number: "181", Description: "24x7 support for women in distress"},
		{Name: "National Emergency Number", Number: "112", Description: "All emergency services (Police, Fire, Medical)"},
		{Name: "Women in Distress", Number: "1091", Description: "Women helpline for immediate assistance"},
		{Name: "Police", Number: "100", Description: "Direct police emergency line"},
	}
}
