package model

import "time"

// GalleryImage is a bilingual gallery entry shown on the marketing site.
// Stored images carry a server-generated ID; the built-in fallback set uses
// fixed literal IDs "1" through "6".
type GalleryImage struct {
	ID            string    `json:"id"`
	TitleES       string    `json:"title_es"`
	TitleEN       string    `json:"title_en"`
	DescriptionES string    `json:"description_es,omitempty"`
	DescriptionEN string    `json:"description_en,omitempty"`
	ImageURL      string    `json:"image_url"`
	Category      string    `json:"category"`
	Order         int       `json:"order"`
	CreatedAt     time.Time `json:"created_at,omitzero"`
}

// DefaultGallery returns the fixed six-image fallback set served when the
// gallery collection is empty. It has no dependencies and returns identical
// content, in the same order, on every call. The result is never persisted.
func DefaultGallery() []*GalleryImage {
	return []*GalleryImage{
		{
			ID:            "1",
			TitleES:       "Cacao Fino de Aroma",
			TitleEN:       "Fine Aroma Cacao",
			DescriptionES: "Granos de cacao seleccionados de la Amazonía Peruana",
			DescriptionEN: "Selected cacao beans from the Peruvian Amazon",
			ImageURL:      "https://images.unsplash.com/photo-1699575947488-30f08e71896b?w=800",
			Category:      "cacao",
			Order:         1,
		},
		{
			ID:            "2",
			TitleES:       "Bosque Amazónico",
			TitleEN:       "Amazon Forest",
			DescriptionES: "Nuestro entorno natural de producción",
			DescriptionEN: "Our natural production environment",
			ImageURL:      "https://images.unsplash.com/photo-1699575678956-aefa714b67f0?w=800",
			Category:      "nature",
			Order:         2,
		},
		{
			ID:            "3",
			TitleES:       "Proceso de Fermentación",
			TitleEN:       "Fermentation Process",
			DescriptionES: "Control de calidad en cada etapa",
			DescriptionEN: "Quality control at every stage",
			ImageURL:      "https://images.pexels.com/photos/6420910/pexels-photo-6420910.jpeg?w=800",
			Category:      "process",
			Order:         3,
		},
		{
			ID:            "4",
			TitleES:       "Majambo Fresco",
			TitleEN:       "Fresh Majambo",
			DescriptionES: "Fruta exótica del Amazonas",
			DescriptionEN: "Exotic fruit from the Amazon",
			ImageURL:      "https://images.pexels.com/photos/14436424/pexels-photo-14436424.jpeg?w=800",
			Category:      "product",
			Order:         4,
		},
		{
			ID:            "5",
			TitleES:       "Sostenibilidad",
			TitleEN:       "Sustainability",
			DescriptionES: "Prácticas responsables con el medio ambiente",
			DescriptionEN: "Environmentally responsible practices",
			ImageURL:      "https://images.pexels.com/photos/7450070/pexels-photo-7450070.jpeg?w=800",
			Category:      "sustainability",
			Order:         5,
		},
		{
			ID:            "6",
			TitleES:       "Granos Seleccionados",
			TitleEN:       "Selected Beans",
			DescriptionES: "Calidad premium para mercados gourmet",
			DescriptionEN: "Premium quality for gourmet markets",
			ImageURL:      "https://images.pexels.com/photos/33662910/pexels-photo-33662910.jpeg?w=800",
			Category:      "product",
			Order:         6,
		},
	}
}
