// Seeder populates a running fleetops server with a plausible tanker fleet:
// vehicles, route permits, token tax records, inventory stock, maintenance
// history and loads, all through the HTTP API.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

var driverNames = []string{
	"Akram Khan", "Bashir Ahmed", "Rashid Mehmood", "Tariq Javed",
	"Imran Baig", "Sajid Hussain", "Naveed Iqbal", "Zafar Abbas",
	"Khalid Mir", "Shabbir Gul",
}

var routes = []string{
	"Karachi to Lahore", "Lahore to Islamabad", "Multan to Faisalabad",
	"Quetta to Karachi", "Peshawar to Rawalpindi", "Hyderabad to Sukkur",
}

var parties = []string{
	"Frontier Oil Traders", "Indus Petroleum", "Chenab Logistics",
	"Ravi Fuels", "Margalla Energy",
}

var engineTypes = []string{"Diesel", "Diesel", "Diesel", "Petrol", "Hybrid"}

var tankerSizes = []int{20000, 25000, 30000, 36000, 40000, 50000}

// randomPlate builds a plate like "ABC-123".
func randomPlate() string {
	letters := make([]byte, 3)
	for i := range letters {
		letters[i] = byte('A' + rand.Intn(26))
	}
	return fmt.Sprintf("%s-%03d", letters, rand.Intn(1000))
}

// randomExpiry returns a date between daysMin and daysMax from today.
func randomExpiry(daysMin, daysMax int) string {
	offset := daysMin + rand.Intn(daysMax-daysMin+1)
	return time.Now().AddDate(0, 0, offset).Format("2006-01-02")
}

func buildVehicle(plate string) map[string]any {
	return map[string]any{
		"plate_number": plate,
		"driver_name":  driverNames[rand.Intn(len(driverNames))],
		"helper_name":  driverNames[rand.Intn(len(driverNames))],
		"tanker_size":  tankerSizes[rand.Intn(len(tankerSizes))],
		"vehicle_type": "Oil Tanker",
		"make_model":   "Hino 500",
		"year":         2012 + rand.Intn(13),
		"engine_type":  engineTypes[rand.Intn(len(engineTypes))],
		"status":       "Active",
	}
}

func buildLoad(plate string) map[string]any {
	gross := 20000 + rand.Float64()*30000
	tare := 8000 + rand.Float64()*4000
	rate := 1.5 + rand.Float64()*3
	return map[string]any{
		"plate_number":    plate,
		"loading_date":    time.Now().AddDate(0, 0, -rand.Intn(60)).Format("2006-01-02"),
		"source":          "Karachi",
		"destination":     routes[rand.Intn(len(routes))],
		"party_name":      parties[rand.Intn(len(parties))],
		"gross_weight":    gross,
		"tare_weight":     tare,
		"rate_per_unit":   rate,
		"advance_payment": 5000 + rand.Float64()*20000,
		"status":          "Loading",
	}
}

func jsonPost(url string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Post(url, "application/json", bytes.NewBuffer(data))
	if err != nil {
		return fmt.Errorf("post %s failed: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("post %s failed with status: %d", url, resp.StatusCode)
	}
	return nil
}

func envInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func main() {
	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080/api"
	}
	vehicleCount := envInt("SEED_VEHICLES", 8)
	loadCount := envInt("SEED_LOADS", 20)

	// Stock up first so maintenance records can deduct parts.
	for item, quantity := range map[string]int{"oil": 40, "air_filter": 60, "tires": 30} {
		payload := map[string]any{"item": item, "quantity": quantity, "operation": "set"}
		if err := jsonPost(apiURL+"/inventory", payload); err != nil {
			log.WithError(err).Fatal("failed to seed inventory")
		}
	}
	log.Info("Seeded inventory")

	plates := make([]string, 0, vehicleCount)
	for i := 0; i < vehicleCount; i++ {
		plate := randomPlate()
		if err := jsonPost(apiURL+"/vehicles", buildVehicle(plate)); err != nil {
			log.WithError(err).Warn("failed to seed vehicle")
			continue
		}
		plates = append(plates, plate)

		permit := map[string]any{
			"plate_number":  plate,
			"permit_number": fmt.Sprintf("RP-%05d", rand.Intn(100000)),
			"location":      routes[rand.Intn(len(routes))],
			"expire_date":   randomExpiry(-30, 365),
		}
		if err := jsonPost(apiURL+"/permits", permit); err != nil {
			log.WithError(err).Warn("failed to seed permit")
		}

		tax := map[string]any{
			"plate_number":   plate,
			"tax_amount":     10000 + rand.Float64()*40000,
			"payment_date":   time.Now().AddDate(0, -rand.Intn(12), 0).Format("2006-01-02"),
			"payment_method": "Bank Transfer",
			"expire_date":    randomExpiry(-15, 365),
		}
		if err := jsonPost(apiURL+"/taxes", tax); err != nil {
			log.WithError(err).Warn("failed to seed tax record")
		}

		maintenance := map[string]any{
			"plate_number":     plate,
			"maintenance_date": time.Now().AddDate(0, 0, -rand.Intn(200)).Format("2006-01-02"),
			"km_travelled":     50000 + rand.Intn(300000),
			"next_service_km":  60000 + rand.Intn(300000),
			"labor_cost":       2000 + rand.Float64()*8000,
			"oil_changed":      true,
			"oil_cost":         4000 + rand.Float64()*4000,
			"tires_changed":    rand.Intn(3),
			"tire_cost":        rand.Float64() * 30000,
		}
		if err := jsonPost(apiURL+"/maintenance", maintenance); err != nil {
			log.WithError(err).Warn("failed to seed maintenance record")
		}

		log.WithField("plate_number", plate).Info("Seeded vehicle")
	}

	if len(plates) == 0 {
		log.Fatal("no vehicles seeded, aborting")
	}

	for i := 0; i < loadCount; i++ {
		plate := plates[rand.Intn(len(plates))]
		if err := jsonPost(apiURL+"/loads", buildLoad(plate)); err != nil {
			log.WithError(err).Warn("failed to seed load")
		}
	}
	log.WithFields(log.Fields{
		"vehicles": len(plates),
		"loads":    loadCount,
	}).Info("Seeding complete")
}
