package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App               `mapstructure:",squash"`
	Server        Server            `mapstructure:",squash"`
	Google        Google            `mapstructure:",squash"`
	HubSpot       HubSpot           `mapstructure:",squash"`
	TokenRefresh  TokenRefresh      `mapstructure:",squash"`
	HubSpotOwners map[string]string `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Google concentra o acesso à planilha de vendas. As credenciais da service
// account podem vir inline (JSON na variável de ambiente) ou de um arquivo.
type Google struct {
	BaseURL         string `mapstructure:"google_sheets_base_url"`
	Scope           string `mapstructure:"google_sheets_scope"`
	SpreadsheetID   string `mapstructure:"google_spreadsheet_id"`
	CredentialsJSON string `mapstructure:"google_credentials"`
	CredentialsFile string `mapstructure:"google_credentials_file"`
}

type HubSpot struct {
	BaseURL     string `mapstructure:"hubspot_base_url"`
	AccessToken string `mapstructure:"hubspot_access_token"`
	PortalID    string `mapstructure:"hubspot_portal_id"`

	OwnerLukas  string `mapstructure:"hubspot_owner_lukas"`
	OwnerSam    string `mapstructure:"hubspot_owner_sam"`
	OwnerTobias string `mapstructure:"hubspot_owner_tobias"`
}

type TokenRefresh struct {
	CronSchedule string `mapstructure:"token_refresh_cron"`
	Enabled      bool   `mapstructure:"token_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("GOOGLE_SHEETS_BASE_URL", "https://sheets.googleapis.com")
	viper.SetDefault("GOOGLE_SHEETS_SCOPE", "https://www.googleapis.com/auth/spreadsheets.readonly")
	viper.SetDefault("GOOGLE_SPREADSHEET_ID", "your_spreadsheet_id")
	viper.SetDefault("GOOGLE_CREDENTIALS", "")
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "")

	viper.SetDefault("HUBSPOT_BASE_URL", "https://api.hubapi.com")
	viper.SetDefault("HUBSPOT_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("HUBSPOT_PORTAL_ID", "")
	viper.SetDefault("HUBSPOT_OWNER_LUKAS", "")
	viper.SetDefault("HUBSPOT_OWNER_SAM", "")
	viper.SetDefault("HUBSPOT_OWNER_TOBIAS", "")

	// Defaults para a renovação proativa do token do Sheets
	viper.SetDefault("TOKEN_REFRESH_CRON", "*/45 * * * *") // A cada 45 minutos
	viper.SetDefault("TOKEN_REFRESH_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	// Mapear cada consultor para o owner correspondente no CRM. As chaves
	// são os nomes completos, os mesmos usados nas abas da planilha.
	config.HubSpotOwners = map[string]string{
		"Lukas Eisele":   config.HubSpot.OwnerLukas,
		"Sam Holdenried": config.HubSpot.OwnerSam,
		"Tobias Hagl":    config.HubSpot.OwnerTobias,
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
