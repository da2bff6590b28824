package main

import (
	"log"

	"sadguru-seva-be/internal/model"

	"gorm.io/gorm"
)

// SeedSatsangPages populates the first pages of the daily satsang book.
// Page numbers map to days since the yatra start, so page 1 is day one.
func SeedSatsangPages(db *gorm.DB) {
	pages := []model.Satsang{
		{
			PageNumber: 1,
			Title:      "सत्संग का आरंभ",
			Content:    "राधे राधे। आज से हम प्रतिदिन एक पृष्ठ सत्संग का पाठ करेंगे। सद्गुरुदेव कहते हैं कि नाम जप ही कलियुग में भवसागर पार करने की नौका है।",
			ContentEn:  "Radhe Radhe. From today we read one page of satsang daily. Sadguru teaches that chanting the holy name is the boat across this age.",
			Author:     "श्री प्रेमभूषण जी महाराज",
			IsActive:   true,
		},
		{
			PageNumber: 2,
			Title:      "नाम की महिमा",
			Content:    "नाम और नामी में कोई भेद नहीं। जो रसना से राधे कृष्ण कहता है, उसके हृदय में स्वयं ठाकुर जी विराजते हैं।",
			ContentEn:  "There is no difference between the name and the named. The Lord himself resides in the heart of one who chants Radhe Krishna.",
			Author:     "श्री प्रेमभूषण जी महाराज",
			IsActive:   true,
		},
		{
			PageNumber: 3,
			Title:      "सुमिरन की रीति",
			Content:    "सुमिरन ऐसी कीजिए जैसे पनिहारी गागर। बोलत डोलत सुरति में, कहै कबीर विचार। माला फेरत जुग भया, फिरा न मन का फेर।",
			ContentEn:  "Remember the Lord as the water bearer remembers her pot, steady through every step of the day.",
			Author:     "श्री प्रेमभूषण जी महाराज",
			IsActive:   true,
		},
	}

	for _, p := range pages {
		var existing model.Satsang
		if err := db.Where("page_number = ?", p.PageNumber).First(&existing).Error; err == nil {
			log.Printf("Satsang page %d already exists, skipping...", p.PageNumber)
			continue
		}

		if err := db.Create(&p).Error; err != nil {
			log.Printf("Error creating satsang page %d: %v", p.PageNumber, err)
		} else {
			log.Printf("Created satsang page: %d (%s)", p.PageNumber, p.Title)
		}
	}
}
