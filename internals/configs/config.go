package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
)

// OfficeLocation adalah titik kantor untuk validasi geofence check-in.
// Nil jika env tidak lengkap → geofence dilewati (check-in tetap diterima).
type OfficeLocation struct {
	Latitude            float64
	Longitude           float64
	AllowedRadiusMeters float64
}

var Office *OfficeLocation

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	Office = loadOfficeLocation()
	if Office == nil {
		log.Println("⚠️ Konfigurasi lokasi kantor tidak lengkap, validasi radius dilewati.")
	} else {
		log.Printf("✅ Lokasi kantor dimuat (radius %.0f meter).", Office.AllowedRadiusMeters)
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func loadOfficeLocation() *OfficeLocation {
	lat, err1 := strconv.ParseFloat(GetEnv("OFFICE_LATITUDE"), 64)
	lon, err2 := strconv.ParseFloat(GetEnv("OFFICE_LONGITUDE"), 64)
	radius, err3 := strconv.ParseFloat(GetEnv("ALLOWED_RADIUS_METERS"), 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return nil
	}
	return &OfficeLocation{
		Latitude:            lat,
		Longitude:           lon,
		AllowedRadiusMeters: radius,
	}
}
