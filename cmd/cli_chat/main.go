package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"swasthya-ai/internal/config"
	"swasthya-ai/internal/domain"
	"swasthya-ai/internal/healthdata"
	"swasthya-ai/internal/repository"
	"swasthya-ai/internal/service"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	var profileRepo repository.ProfileRepository = repository.NewMemoryProfileRepository()
	if cfg.ProfileStore == config.ProfileStoreBolt {
		boltRepo, err := repository.NewBoltProfileRepository(cfg.BoltPath)
		if err != nil {
			log.Fatalf("abrir perfiles: %v", err)
		}
		defer boltRepo.Close()
		profileRepo = boltRepo
	}

	data := healthdata.Default()
	deps := service.SessionDeps{
		Resolver:  service.NewResponseResolver(data),
		Questions: data.Questions,
		Profiles:  service.NewProfileService(profileRepo, logger),
		Pacing: service.Pacing{
			ReplyDelayMin: cfg.ReplyDelayMin(),
			ReplyDelayMax: cfg.ReplyDelayMax(),
			QuestionDelay: cfg.QuestionDelay(),
		},
		Logger: zap.NewNop(),
	}

	lang := chooseLanguage(reader)
	session, err := service.NewChatSession(ctx, deps, "", lang, service.ProfileStorageKey)
	if err != nil {
		log.Fatalf("crear sesion: %v", err)
	}
	defer session.Close()

	events, cancel := session.Subscribe()
	defer cancel()
	for _, msg := range session.Snapshot().Messages {
		printMessage(msg, lang)
	}
	go func() {
		for ev := range events {
			switch {
			case ev.Kind == service.EventReset:
				fmt.Printf("\n---- Conversacion reiniciada (%s) ----\n", ev.Language)
			case ev.Message != nil && !ev.Message.IsUser:
				printMessage(*ev.Message, ev.Language)
			}
		}
	}()

	fmt.Println("---- Modo Chat ('/lang en|hi|te', '/profile', 'exit' para salir) ----")
	for {
		input, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		input = strings.TrimSpace(input)

		switch {
		case input == "":
			continue
		case input == "exit":
			fmt.Println("Saliendo del chat...")
			return
		case input == "/profile":
			out, _ := json.MarshalIndent(session.Profile(), "", "  ")
			fmt.Println(string(out))
		case strings.HasPrefix(input, "/lang"):
			code := strings.TrimSpace(strings.TrimPrefix(input, "/lang"))
			if err := session.SetLanguage(ctx, domain.Language(code)); err != nil {
				fmt.Printf("Idioma no soportado: %q\n", code)
			}
		default:
			handleInput(ctx, session, data, input)
		}
	}
}

// handleInput interpreta un número como opción mientras dura el cuestionario.
func handleInput(ctx context.Context, session *service.ChatSession, data *healthdata.Store, input string) {
	state := session.Snapshot()
	if state.Flow.State == domain.FlowFinished || state.Flow.QuestionIndex >= len(data.Questions) {
		session.SubmitText(ctx, input)
		return
	}

	n, err := strconv.Atoi(input)
	q := data.Questions[state.Flow.QuestionIndex]
	if err != nil || n < 1 || n > len(q.Options) {
		fmt.Printf("Elige una opcion entre 1 y %d.\n", len(q.Options))
		return
	}
	err = session.SelectOption(ctx, q.Options[n-1].ID)
	switch {
	case errors.Is(err, service.ErrQuestionPending):
		fmt.Println("Espera la siguiente pregunta...")
	case err != nil:
		fmt.Printf("Error: %v\n", err)
	}
}

func chooseLanguage(reader *bufio.Reader) domain.Language {
	fmt.Print("Idioma [en/hi/te] (en): ")
	line, _ := reader.ReadString('\n')
	if lang, ok := domain.ParseLanguage(line); ok {
		return lang
	}
	return domain.LanguageEnglish
}

func printMessage(msg domain.Message, lang domain.Language) {
	if msg.IsUser {
		return
	}
	fmt.Printf("Bot > %s\n", msg.Text)
	for i, opt := range msg.Options {
		fmt.Printf("  [%d] %s\n", i+1, opt.Text.In(lang))
	}
}
