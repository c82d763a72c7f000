package cmd

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	AdminPasscode     string
	LogisticsPasscode string
	Kuaidi100Customer string
	Kuaidi100Key      string
}
