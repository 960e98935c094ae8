package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"absensiku_backend/internals/configs"
)

// Kategori performa berbasis persentase kehadiran + jumlah alfa
const (
	CategorySangatBaik     = "Sangat Baik"
	CategoryBaik           = "Baik"
	CategoryCukup          = "Cukup"
	CategoryPerluPerhatian = "Perlu Perhatian Serius"
)

func CategorizePerformance(attendanceRate float64, alfa int) string {
	switch {
	case attendanceRate >= 95 && alfa == 0:
		return CategorySangatBaik
	case attendanceRate >= 85 && alfa <= 1:
		return CategoryBaik
	case attendanceRate >= 70:
		return CategoryCukup
	default:
		return CategoryPerluPerhatian
	}
}

// PerformanceFacts adalah bahan mentah narasi AI.
type PerformanceFacts struct {
	Name           string
	Position       string
	Month          string
	AttendanceRate float64
	TepatWaktu     int
	Terlambat      int
	Izin           int
	Alfa           int
	HighRiskCount  int
	FraudFlags     []string
	Trend          Trend
}

func BuildPrompt(f PerformanceFacts) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Kamu adalah asisten HR. Buat ringkasan performa kehadiran dalam 2-3 kalimat bahasa Indonesia, nada profesional.\n")
	fmt.Fprintf(&b, "Karyawan: %s (%s), periode %s.\n", f.Name, f.Position, f.Month)
	fmt.Fprintf(&b, "Kehadiran %.1f%% (tepat waktu %d, terlambat %d, izin %d, alfa %d).\n",
		f.AttendanceRate, f.TepatWaktu, f.Terlambat, f.Izin, f.Alfa)
	fmt.Fprintf(&b, "Tren dibanding bulan lalu: %s (%.1f%%).\n", f.Trend.Direction, f.Trend.ChangePercent)
	if f.HighRiskCount > 0 {
		fmt.Fprintf(&b, "Ada %d check-in berisiko tinggi yang perlu ditinjau.\n", f.HighRiskCount)
	}
	if len(f.FraudFlags) > 0 {
		fmt.Fprintf(&b, "RISIKO: %s\n", strings.Join(f.FraudFlags, ", "))
	} else {
		fmt.Fprintf(&b, "RISIKO: Tidak ada indikasi risiko.\n")
	}
	fmt.Fprintf(&b, "Kategori: %s.", CategorizePerformance(f.AttendanceRate, f.Alfa))
	return b.String()
}

type ollamaRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaResponse struct {
	Response string `json:"response"`
}

// GenerateAISummary meminta narasi ke Ollama. Kalau Ollama tidak tersedia,
// kembalikan narasi fallback berbasis kategori supaya endpoint tetap hidup.
func GenerateAISummary(f PerformanceFacts) string {
	baseURL := configs.GetEnv("OLLAMA_URL", "http://localhost:11434")
	modelName := configs.GetEnv("OLLAMA_MODEL", "llama3")

	payload, err := sonic.Marshal(ollamaRequest{
		Model:  modelName,
		Prompt: BuildPrompt(f),
		Stream: false,
	})
	if err != nil {
		return fallbackSummary(f)
	}

	agent := fiber.Post(baseURL + "/api/generate")
	agent.ContentType("application/json")
	agent.Body(payload)
	agent.Timeout(30 * time.Second)

	statusCode, body, errs := agent.Bytes()
	if len(errs) > 0 || statusCode != fiber.StatusOK {
		log.Printf("[WARN] Ollama tidak tersedia (status=%d), pakai ringkasan fallback", statusCode)
		return fallbackSummary(f)
	}

	var parsed ollamaResponse
	if err := sonic.Unmarshal(body, &parsed); err != nil || strings.TrimSpace(parsed.Response) == "" {
		return fallbackSummary(f)
	}
	return strings.TrimSpace(parsed.Response)
}

func fallbackSummary(f PerformanceFacts) string {
	return fmt.Sprintf(
		"Kehadiran %s periode %s berada di %.1f%% dengan %d alfa. Kategori: %s.",
		f.Name, f.Month, f.AttendanceRate, f.Alfa, CategorizePerformance(f.AttendanceRate, f.Alfa),
	)
}
