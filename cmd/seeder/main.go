package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/ridenaija/ridenaija/internal/pkg/config"
	"github.com/ridenaija/ridenaija/internal/pkg/database"
	"github.com/ridenaija/ridenaija/internal/pkg/logger"
	"github.com/ridenaija/ridenaija/internal/pkg/models"
	nrpkg "github.com/ridenaija/ridenaija/internal/pkg/newrelic"
	tripsrepo "github.com/ridenaija/ridenaija/services/trips/repository"
	tripsusecase "github.com/ridenaija/ridenaija/services/trips/usecase"
)

const seedDays = 7

var departureHours = []int{8, 12, 16}

type seedUser struct {
	name     string
	email    string
	phone    string
	role     string
	rating   float64
	password string
}

var sampleUsers = []seedUser{
	{name: "Admin User", email: "admin@ridenaija.com", phone: "+2348011112222", role: "admin", rating: 5.0, password: "password123"},
	{name: "John Driver", email: "driver@ridenaija.com", phone: "+2348012345678", role: "driver", rating: 4.8, password: "password123"},
	{name: "Sarah Passenger", email: "passenger@ridenaija.com", phone: "+2348087654321", role: "passenger", rating: 4.9, password: "password123"},
}

func main() {
	configPath := "config/api.env"
	configs := config.InitConfig(configPath)

	nrApp := nrpkg.InitNewRelic(configs)
	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	ctx := context.Background()
	db := postgresClient.GetDB()

	userCount, err := seedUsers(ctx, db)
	if err != nil {
		zapLogger.Fatal("Failed to seed users", logger.Err(err))
	}

	tripUC := tripsusecase.NewTripUC(tripsrepo.NewTripRepo(configs, db), configs)

	tripCount, err := seedTrips(ctx, db, tripUC.Routes())
	if err != nil {
		zapLogger.Fatal("Failed to seed trips", logger.Err(err))
	}

	logger.Info("Seeding complete",
		logger.Int("users", userCount),
		logger.Int("trips", tripCount),
	)
}

// seedUsers inserts the sample accounts, skipping ones that already exist.
func seedUsers(ctx context.Context, db *sqlx.DB) (int, error) {
	query := `
		INSERT INTO users (id, name, email, phone, password_hash, role, rating, created_at)
		VALUES (:id, :name, :email, :phone, :password_hash, :role, :rating, :created_at)
		ON CONFLICT (email) DO NOTHING`

	count := 0
	for _, su := range sampleUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			return count, fmt.Errorf("failed to hash password for %s: %w", su.email, err)
		}

		user := &models.User{
			ID:           uuid.New(),
			Name:         su.name,
			Email:        su.email,
			Phone:        su.phone,
			PasswordHash: string(hash),
			Role:         su.role,
			Rating:       su.rating,
			CreatedAt:    time.Now(),
		}

		if _, err := db.NamedExecContext(ctx, query, user); err != nil {
			return count, fmt.Errorf("failed to insert user %s: %w", su.email, err)
		}
		count++
	}

	return count, nil
}

// seedTrips generates scheduled trips for every served route over the next
// seedDays days, three departures per day.
func seedTrips(ctx context.Context, db *sqlx.DB, routes []models.Route) (int, error) {
	query := `
		INSERT INTO trips (
			id, driver_name, driver_rating, from_location, to_location,
			departure_time, arrival_time, available_seats, seat_capacity,
			price_per_seat, car_model, car_plate, car_type, amenities, status, created_at
		) VALUES (
			:id, :driver_name, :driver_rating, :from_location, :to_location,
			:departure_time, :arrival_time, :available_seats, :seat_capacity,
			:price_per_seat, :car_model, :car_plate, :car_type, :amenities, :status, :created_at
		)`

	today := time.Now().Truncate(24 * time.Hour)
	plateSeq := 1
	count := 0

	for _, route := range routes {
		travel := travelDuration(route.Duration)

		for day := 0; day < seedDays; day++ {
			for _, hour := range departureHours {
				departure := today.AddDate(0, 0, day+1).Add(time.Duration(hour) * time.Hour)
				seats := 8 + rand.Intn(7)

				trip := &models.Trip{
					ID:             uuid.New(),
					DriverName:     "John Driver",
					DriverRating:   4.8,
					FromLocation:   route.From,
					ToLocation:     route.To,
					DepartureTime:  departure,
					ArrivalTime:    departure.Add(travel),
					AvailableSeats: seats,
					SeatCapacity:   seats,
					PricePerSeat:   route.Price,
					CarModel:       "Toyota Hiace",
					CarPlate:       fmt.Sprintf("RNJ%03d", plateSeq),
					CarType:        "bus",
					Amenities:      models.Amenities{"AC", "Comfortable Seats", "Charging Ports"},
					Status:         models.TripStatusScheduled,
					CreatedAt:      time.Now(),
				}
				plateSeq++

				if _, err := db.NamedExecContext(ctx, query, trip); err != nil {
					return count, fmt.Errorf("failed to insert trip %s to %s: %w", route.From, route.To, err)
				}
				count++
			}
		}
	}

	return count, nil
}

// travelDuration parses the lower bound of a route duration like
// "10-12 hours" into a time.Duration.
func travelDuration(duration string) time.Duration {
	fields := strings.FieldsFunc(duration, func(r rune) bool {
		return r == '-' || r == ' '
	})
	if len(fields) == 0 {
		return 8 * time.Hour
	}

	hours, err := strconv.Atoi(fields[0])
	if err != nil || hours <= 0 {
		return 8 * time.Hour
	}

	return time.Duration(hours) * time.Hour
}
