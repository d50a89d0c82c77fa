package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"venuespace/internal/database"
	"venuespace/internal/domain"
)

func main() {
	rand.Seed(time.Now().UnixNano())

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "venuespace.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM service_options")
	db.Exec("DELETE FROM catalog_services")
	db.Exec("DELETE FROM venues")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@venuespace.kz",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Администратор",
	}
	db.Create(&admin)
	log.Println("Admin created: admin@venuespace.kz / admin123")

	clients := []domain.User{}
	clientEmails := []string{"asel@mail.kz", "bekzat@gmail.com", "dina@yandex.kz"}
	for i, email := range clientEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("client123"), bcrypt.DefaultCost)
		client := domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleClient,
			Name:         fmt.Sprintf("Клиент %d", i+1),
			Phone:        fmt.Sprintf("+7 777 123 45%02d", i+67),
		}
		db.Create(&client)
		clients = append(clients, client)
	}

	hosts := []domain.User{}
	hostEmails := []string{"aidar@loftspaces.kz", "gulnaz@banquethall.kz", "yerlan@rooftop.kz"}
	for i, email := range hostEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("host123"), bcrypt.DefaultCost)
		host := domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleHost,
			Name:         fmt.Sprintf("Владелец %d", i+1),
			HostStatus:   domain.HostVerified,
		}
		db.Create(&host)
		hosts = append(hosts, host)
	}

	// ================== VENUES ==================
	log.Println("Creating venues...")
	venueTypes := []domain.VenueType{
		domain.VenueBanquetHall,
		domain.VenueConference,
		domain.VenueOutdoor,
		domain.VenueRestaurant,
		domain.VenuePhotoStudio,
	}
	pricingTypes := []domain.PricingType{
		domain.PricingFixed,
		domain.PricingPerPerson,
		domain.PricingHourly,
	}

	venues := make([]domain.Venue, 0, 5)
	for i := 0; i < 5; i++ {
		host := hosts[i%len(hosts)]
		venue := domain.Venue{
			HostID: host.ID,
			Name: domain.LocalizedText{
				"en": fmt.Sprintf("Venue %d Hall", i+1),
				"ru": fmt.Sprintf("Зал %d", i+1),
			},
			Description: domain.LocalizedText{
				"en": "Spacious venue with modern equipment",
				"ru": "Просторная площадка с современным оборудованием",
			},
			Address:   fmt.Sprintf("ул. Тестовая %d", i+100),
			District:  "Центральный",
			City:      "Алматы",
			VenueType: venueTypes[i%len(venueTypes)],
			Capacity:  50 + i*30,
			Price: domain.Price{
				Amount:   float64(20000 + i*15000),
				Currency: "KZT",
				Type:     pricingTypes[i%len(pricingTypes)],
			},
			Amenities:    domain.StringList{"wifi", "parking", "sound_system"},
			Photos:       domain.StringList{fmt.Sprintf("https://cdn.venuespace.kz/venues/%d/main.jpg", i+1)},
			Rating:       4.0 + rand.Float64()*1.0,
			TotalReviews: rand.Intn(100),
			IsActive:     true,
		}
		db.Create(&venue)
		venues = append(venues, venue)
	}

	// ================== SERVICES ==================
	log.Println("Creating services...")
	type seedOption struct {
		name  domain.LocalizedText
		price domain.Price
	}
	seedServices := []struct {
		name    domain.LocalizedText
		icon    string
		options []seedOption
	}{
		{
			name: domain.LocalizedText{"en": "DJ Services", "ru": "Диджей"},
			icon: "music",
			options: []seedOption{
				{
					name:  domain.LocalizedText{"en": "Standard Set", "ru": "Стандартный сет"},
					price: domain.Price{Amount: 40000, Currency: "KZT", Type: domain.PricingFixed},
				},
				{
					name:  domain.LocalizedText{"en": "Premium Package", "ru": "Премиум пакет"},
					price: domain.Price{Amount: 80000, Currency: "KZT", Type: domain.PricingFixed},
				},
			},
		},
		{
			name: domain.LocalizedText{"en": "Catering", "ru": "Кейтеринг"},
			icon: "utensils",
			options: []seedOption{
				{
					name:  domain.LocalizedText{"en": "Buffet", "ru": "Фуршет"},
					price: domain.Price{Amount: 5000, Currency: "KZT", Type: domain.PricingPerPerson},
				},
				{
					name:  domain.LocalizedText{"en": "Banquet Menu", "ru": "Банкетное меню"},
					price: domain.Price{Amount: 9000, Currency: "KZT", Type: domain.PricingPerPerson},
				},
			},
		},
		{
			name: domain.LocalizedText{"en": "Decoration", "ru": "Оформление"},
			icon: "sparkles",
			options: []seedOption{
				{
					name:  domain.LocalizedText{"en": "Floral Design", "ru": "Флористика"},
					price: domain.Price{Amount: 60000, Currency: "KZT", Type: domain.PricingFixed},
				},
			},
		},
	}

	services := make([]domain.CatalogService, 0, len(seedServices))
	for i, ss := range seedServices {
		svc := domain.CatalogService{
			HostID:   hosts[i%len(hosts)].ID,
			Name:     ss.name,
			Icon:     ss.icon,
			IsActive: true,
		}
		db.Create(&svc)
		for _, opt := range ss.options {
			db.Create(&domain.ServiceOption{
				ServiceID: svc.ID,
				Name:      opt.name,
				Price:     opt.price,
				IsActive:  true,
			})
		}
		services = append(services, svc)
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")
	statuses := []domain.BookingStatus{
		domain.BookingPending,
		domain.BookingConfirmed,
		domain.BookingCompleted,
		domain.BookingCancelled,
	}

	for i := 0; i < 8; i++ {
		client := clients[i%len(clients)]
		venue := venues[i%len(venues)]
		start := time.Now().AddDate(0, 0, 7+i*3)

		var options domain.BookingOptions
		var ledger domain.OptionLedger
		if i%2 == 0 {
			var opt domain.ServiceOption
			db.Where("service_id = ?", services[i%len(services)].ID).First(&opt)
			options = domain.BookingOptions{{
				OptionID:  opt.ID,
				ServiceID: opt.ServiceID,
				Name:      opt.Name,
				Price:     opt.Price,
			}}
			status := domain.OptionPending
			if i%4 == 0 {
				status = domain.OptionCancelled
			}
			ledger = domain.OptionLedger{{
				OptionID:  opt.ID,
				ServiceID: opt.ServiceID,
				Status:    status,
			}}
		}

		booking := domain.Booking{
			Reference:       uuid.NewString(),
			UserID:          client.ID,
			VenueID:         venue.ID,
			StartDate:       start.Format("2006-01-02"),
			EndDate:         start.Format("2006-01-02"),
			StartTime:       "14:00",
			EndTime:         "20:00",
			NumberOfGuests:  20 + rand.Intn(60),
			SelectedOptions: options,
			OptionStatuses:  ledger,
			TotalPrice:      venue.Price.Amount,
			Status:          statuses[i%len(statuses)],
			PaymentStatus:   domain.PaymentPending,
		}
		db.Create(&booking)
	}

	log.Println("Seed completed")
}
