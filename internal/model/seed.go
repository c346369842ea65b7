package model

// SeedAvatars returns the sample records every new dashboard starts from.
func SeedAvatars() []AvatarRecord {
	return []AvatarRecord{
		{
			ID:          1,
			FirstName:   "Emma",
			LastName:    "Johnson",
			Email:       "emma.johnson@company.com",
			AvatarImage: "https://images.unsplash.com/photo-1580489944761-15a19d654956?auto=format&fit=crop&w=1361&q=80",
			CreatedAt:   "May 15, 2025",
			Category:    CategoryProfessional,
		},
		{
			ID:          2,
			FirstName:   "Daniel",
			LastName:    "Chen",
			Email:       "daniel.chen@company.com",
			AvatarImage: "https://vheer.com/_next/image?url=%2Fimages%2FlandingPages%2Fai_profile_picture_generator%2Fpreview_image_2.webp&w=1080&q=75",
			CreatedAt:   "May 15, 2025",
			Category:    CategoryCreative,
		},
		{
			ID:          3,
			FirstName:   "Sarah",
			LastName:    "Williams",
			Email:       "sarah.williams@company.com",
			AvatarImage: "https://images.unsplash.com/photo-1544005313-94ddf0286df2?auto=format&fit=crop&w=1376&q=80",
			CreatedAt:   "May 15, 2025",
			Category:    CategoryCasual,
		},
	}
}
