package catalog

import "github.com/alextreichler/thumbify/internal/models"

func seedItems() []models.PortfolioItem {
	return []models.PortfolioItem{
		{ID: 1, Title: "Miniature de Réaction Surpris", ImageURL: "https://picsum.photos/seed/thumb1/600/400", Category: "Gaming"},
		{ID: 2, Title: "La PLUS GRANDE Pizza du Monde", ImageURL: "https://picsum.photos/seed/thumb2/600/400", Category: "Vlog"},
		{ID: 3, Title: "Comment Coder un Site en 10 Minutes", ImageURL: "https://picsum.photos/seed/thumb3/600/400", Category: "Tutoriel"},
		{ID: 4, Title: "Ma Nouvelle Supercar !", ImageURL: "https://picsum.photos/seed/thumb4/600/400", Category: "Vlog"},
		{ID: 5, Title: "Victoire Épique sur Fortnite", ImageURL: "https://picsum.photos/seed/thumb5/600/400", Category: "Gaming"},
		{ID: 6, Title: "React vs. Vue : Le Duel Ultime", ImageURL: "https://picsum.photos/seed/thumb6/600/400", Category: "Tutoriel"},
		{ID: 7, Title: "Carnet de Voyage : Tokyo", ImageURL: "https://picsum.photos/seed/thumb7/600/400", Category: "Vlog"},
		{ID: 8, Title: "Le Krach Boursier Expliqué", ImageURL: "https://picsum.photos/seed/thumb8/600/400", Category: "Finance"},
	}
}

func seedPacks() []models.PricingPack {
	return []models.PricingPack{
		{
			ID:          "starter",
			Title:       "Pack Découverte",
			Price:       25,
			Description: "Une seule miniature à fort impact pour bien commencer.",
			Features:    []string{"1 Miniature Haute Qualité", "Livraison en 24h", "2 Révisions", "Fichier Source Inclus"},
		},
		{
			ID:          "creator",
			Title:       "Pack Créateur",
			Price:       115,
			Description: "Parfait pour les créateurs qui publient régulièrement.",
			Features:    []string{"5 Miniatures Haute Qualité", "Livraison Prioritaire", "Révisions Illimitées", "Fichiers Sources Inclus"},
		},
		{
			ID:          "pro",
			Title:       "Pack Pro",
			Price:       250,
			Description: "Le meilleur rapport qualité-prix pour les créateurs et agences.",
			Features:    []string{"12 Miniatures Haute Qualité", "Support VIP", "Révisions Illimitées", "Fichiers Sources Inclus"},
		},
		{
			ID:          "premium",
			Title:       "Abonnement Premium",
			Price:       400,
			Description: "La solution ultime pour les chaînes sérieuses qui veulent déléguer.",
			Features:    []string{"20 Miniatures/Mois", "Designer Dédié", "Appel Stratégique", "Variantes pour Test A/B"},
			IsPremium:   true,
		},
	}
}
