package config

import "os"

func Load() (string, string) {
	return os.Getenv("DATABASE_URL"), os.Getenv("SECRET_KEY")
}
