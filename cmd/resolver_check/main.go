package main

import (
	"fmt"
	"os"
	"strings"

	"swasthya-ai/internal/domain"
	"swasthya-ai/internal/healthdata"
	"swasthya-ai/internal/service"
)

type Scenario struct {
	Name        string
	Language    domain.Language
	Input       string
	Branch      service.Branch
	MustContain string
}

func scenarios() []Scenario {
	return []Scenario{
		{Name: "Nombre en ingles", Language: domain.LanguageEnglish, Input: "My name is Ravi", Branch: service.BranchName, MustContain: "Ravi"},
		{Name: "Nombre gana a la edad", Language: domain.LanguageEnglish, Input: "my name is Ravi and I am 5 years old", Branch: service.BranchName, MustContain: "Ravi"},
		{Name: "Vacunas infantiles", Language: domain.LanguageEnglish, Input: "I am 5 years old", Branch: service.BranchVaccination, MustContain: "Typhoid"},
		{Name: "Vacunas adolescente en hindi", Language: domain.LanguageHindi, Input: "My son is 15 years old", Branch: service.BranchVaccination, MustContain: "MMR"},
		{Name: "Adulto sin vacunas", Language: domain.LanguageEnglish, Input: "I am 30 years old", Branch: service.BranchFallback},
		{Name: "Alertas de brote", Language: domain.LanguageTelugu, Input: "any outbreak near me?", Branch: service.BranchOutbreak},
		{Name: "Palabra clave dengue", Language: domain.LanguageEnglish, Input: "How do I avoid DENGUE?", Branch: service.BranchKeyword, MustContain: "dengue"},
		{Name: "Palabra clave en devanagari", Language: domain.LanguageHindi, Input: "मलेरिया", Branch: service.BranchKeyword},
		{Name: "Sin coincidencias", Language: domain.LanguageTelugu, Input: "hello there", Branch: service.BranchFallback, MustContain: healthdata.Fallback(domain.LanguageTelugu)},
	}
}

// check ejecuta un escenario y devuelve la respuesta junto con el motivo del fallo, si lo hay.
func check(resolver *service.ResponseResolver, sc Scenario) (service.Resolution, string) {
	res := resolver.Resolve(sc.Input, sc.Language)
	if res.Reply == "" {
		return res, "empty reply"
	}
	if res.Branch != sc.Branch {
		return res, fmt.Sprintf("branch esperado=%s obtenido=%s", sc.Branch, res.Branch)
	}
	if sc.MustContain != "" && !strings.Contains(strings.ToLower(res.Reply), strings.ToLower(sc.MustContain)) {
		return res, fmt.Sprintf("la respuesta no contiene %q", sc.MustContain)
	}
	return res, ""
}

func main() {
	resolver := service.NewResponseResolver(healthdata.Default())

	all := scenarios()
	passed := 0
	for _, sc := range all {
		fmt.Printf("=== Ejecutando: %s [%s] ===\n", sc.Name, sc.Language)
		res, reason := check(resolver, sc)

		fmt.Println("--- Respuesta ---")
		fmt.Println(res.Reply)
		fmt.Println("-----------------")

		if reason == "" {
			fmt.Printf("✅ PASS [%s] branch=%s\n\n", sc.Name, res.Branch)
			passed++
		} else {
			fmt.Printf("❌ FAIL [%s] %s\n\n", sc.Name, reason)
		}
	}

	fmt.Printf("Tests: %d/%d pasaron\n", passed, len(all))
	if passed != len(all) {
		os.Exit(1)
	}
}
