package assistant

import (
	"fmt"
	"strings"

	"carteasy/internal/models"
)

const (
	GreetingMessage = "Hi! I'm DevAI, your shopping assistant. How can I help you today?"
	FallbackReply   = "I'm sorry, I couldn't understand that. Can you try asking something else?"
	HelloReply      = "Hello! How can I help you find products today?"
)

// rule asocia palabras clave con una respuesta; reply recibe el catálogo
type rule struct {
	keywords []string
	reply    func(products []models.Product) string
}

func fixed(s string) func([]models.Product) string {
	return func([]models.Product) string { return s }
}

// rules se evalúan en orden; gana la primera coincidencia
var rules = []rule{
	{[]string{"hello", "hi"}, fixed(HelloReply)},
	{[]string{"help"}, fixed("I can help you find products, answer questions about items, or give recommendations. Just ask away!")},
	{[]string{"laptop", "computer"}, laptopReply},
	{[]string{"headphone", "earphone", "audio"}, fixed("We have some premium wireless headphones that customers love! Would you like me to show you our top audio products?")},
	{[]string{"recommend", "suggestion"}, fixed("Based on popular items, I'd recommend our Premium Wireless Headphones or Ultra-Slim Laptop if you're looking for electronics. Is there a specific category you're interested in?")},
	{[]string{"price", "cost", "cheap", "expensive"}, fixed("Our products range from ₹7,999 to ₹120,000. Can you tell me your budget, and I'll recommend products within that range?")},
	{[]string{"offer", "discount", "deal"}, fixed("We currently have special offers on selected Electronics and Wearables. Would you like me to show you our featured deals?")},
	{[]string{"thank"}, fixed("You're welcome! Feel free to ask if you need any more help with your shopping.")},
	{[]string{"bye", "goodbye"}, fixed("Have a great day! Come back anytime if you need assistance with your shopping.")},
}

func laptopReply(products []models.Product) string {
	count := 0
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), "laptop") ||
			strings.Contains(strings.ToLower(p.Description), "laptop") {
			count++
		}
	}
	if count == 0 {
		return "We have some great laptops in our Electronics section. Would you like me to show you those?"
	}
	return fmt.Sprintf("I found %d laptop(s) that might interest you! You can check them out in our Electronics category.", count)
}

// Reply elige la respuesta para el texto del usuario
func Reply(text string, products []models.Product) string {
	lower := strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.reply(products)
			}
		}
	}
	return FallbackReply
}
