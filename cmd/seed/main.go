package main

import (
	"log"
	"os"

	"sadguru-seva-be/internal/model"
	"sadguru-seva-be/pkg/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding Authorized Admins...")
	SeedAdmins(db)

	log.Println("Seeding Krishna Lilas...")
	SeedLilas(db)

	log.Println("Seeding Satsang Pages...")
	SeedSatsangPages(db)

	log.Println("Seeding completed!")
}

// SeedAdmins creates the initial admin from SEED_ADMIN_* env vars. The
// passcode is stored as a bcrypt hash, never in clear.
func SeedAdmins(db *gorm.DB) {
	name := os.Getenv("SEED_ADMIN_NAME")
	phone := os.Getenv("SEED_ADMIN_PHONE")
	passcode := os.Getenv("SEED_ADMIN_PASSCODE")

	if name == "" || phone == "" || passcode == "" {
		log.Println("SEED_ADMIN_NAME/PHONE/PASSCODE not set, skipping admin seed")
		return
	}

	var existing model.AuthorizedAdmin
	if err := db.Where("phone = ?", phone).First(&existing).Error; err == nil {
		log.Printf("Admin '%s' already exists, skipping...", name)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing admin passcode: %v", err)
		return
	}

	admin := model.AuthorizedAdmin{
		Name:         name,
		Phone:        phone,
		PasscodeHash: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Error creating admin '%s': %v", name, err)
	} else {
		log.Printf("Created admin: %s", name)
	}
}

// SeedLilas populates a starter set of krishna lila articles.
func SeedLilas(db *gorm.DB) {
	lilas := []model.Lila{
		{
			Title:    "माखन चोरी लीला",
			Category: "बाल लीला",
			Content:  "गोकुल में नन्हे कान्हा की माखन चोरी की लीलाएं गोपियों के हृदय में प्रेम जगाती थीं। यशोदा मैया जब कान्हा को पकड़तीं, तब वे भोलेपन से कहते, मैया मैंने माखन नहीं खायो।",
			Excerpt:  "गोकुल में नन्हे कान्हा की माखन चोरी की लीलाएं।",
			IsActive: true,
		},
		{
			Title:    "कालिया नाग मर्दन",
			Category: "बाल लीला",
			Content:  "यमुना के विषैले जल में कालिया नाग का वास था। श्रीकृष्ण ने कालिया के फनों पर नृत्य कर उसे यमुना छोड़ने का आदेश दिया और यमुना का जल फिर अमृत समान हो गया।",
			Excerpt:  "श्रीकृष्ण ने कालिया के फनों पर नृत्य किया।",
			IsActive: true,
		},
		{
			Title:    "गोवर्धन धारण",
			Category: "गोकुल लीला",
			Content:  "इन्द्र के कोप से ब्रजवासियों की रक्षा हेतु श्रीकृष्ण ने सात दिन तक गोवर्धन पर्वत को अपनी कनिष्ठा उंगली पर धारण किया। तभी से वे गिरिधारी कहलाए।",
			Excerpt:  "श्रीकृष्ण ने गोवर्धन पर्वत को कनिष्ठा उंगली पर धारण किया।",
			IsActive: true,
		},
		{
			Title:    "महारास",
			Category: "वृंदावन लीला",
			Content:  "शरद पूर्णिमा की रात्रि वृंदावन में श्रीकृष्ण ने गोपियों संग महारास रचाया। प्रत्येक गोपी के साथ एक कृष्ण, यह प्रेम की पराकाष्ठा थी।",
			Excerpt:  "शरद पूर्णिमा की रात्रि का महारास।",
			IsActive: true,
		},
	}

	for _, l := range lilas {
		var existing model.Lila
		if err := db.Where("title = ?", l.Title).First(&existing).Error; err == nil {
			log.Printf("Lila '%s' already exists, skipping...", l.Title)
			continue
		}

		if err := db.Create(&l).Error; err != nil {
			log.Printf("Error creating lila '%s': %v", l.Title, err)
		} else {
			log.Printf("Created lila: %s (%s)", l.Title, l.Category)
		}
	}
}
