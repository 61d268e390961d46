package config

import (
	"github.com/joeblew999/plat-welcome/pkg/mail"
	"github.com/joeblew999/plat-welcome/pkg/notify"
	"github.com/zeromicro/go-zero/rest"
)

// Config holds the server configuration.
type Config struct {
	rest.RestConf

	Site     SiteConfig        `json:",optional"`
	Notifier NotifierConfig    `json:",optional"`
	Database DatabaseConfig    `json:",optional"`
	SMTP     SMTPConfig        `json:",optional"`
	Messages map[string]string `json:",optional"`
}

// SiteConfig describes the host site the emails point at.
type SiteConfig struct {
	HomeURL     string `json:",default=http://localhost:8080"`
	AssetURL    string `json:",default=http://localhost:8080/theme"`
	LoginURL    string `json:",default=http://localhost:8080/login"`
	AdminEmail  string `json:",optional"`
	AccentColor string `json:",default=#002856"`
}

// NotifierConfig selects the credential variant and the message layout.
type NotifierConfig struct {
	Variant string `json:",default=password,options=password|link"`
	Layout  string `json:",default=fragment,options=fragment|mjml"`
	Debug   bool   `json:",optional"`
}

// DatabaseConfig holds database settings.
type DatabaseConfig struct {
	Path string `json:",default=./.data/plat-welcome.db"`
}

// SMTPConfig holds SMTP email delivery settings. LogOnly logs messages
// instead of sending them.
type SMTPConfig struct {
	Host      string `json:",default=smtp.gmail.com"`
	Port      int    `json:",default=587"`
	Username  string `json:",optional"`
	Password  string `json:",optional"`
	FromEmail string `json:",optional"`
	FromName  string `json:",default=The Healthy Futures Challenge"`
	RateLimit int    `json:",default=60"`
	LogOnly   bool   `json:",optional"`
}

// Mail converts the SMTP section to a sender configuration.
func (c SMTPConfig) Mail() mail.Config {
	return mail.Config{
		SMTPHost:  c.Host,
		SMTPPort:  c.Port,
		Username:  c.Username,
		Password:  c.Password,
		FromEmail: c.FromEmail,
		FromName:  c.FromName,
		RateLimit: c.RateLimit,
	}
}

// Notify converts the site section to the notifier's view of the host.
func (c SiteConfig) Notify() notify.Site {
	return notify.Site{
		HomeURL:     c.HomeURL,
		AssetURL:    c.AssetURL,
		LoginURL:    c.LoginURL,
		AdminEmail:  c.AdminEmail,
		AccentColor: c.AccentColor,
	}
}
