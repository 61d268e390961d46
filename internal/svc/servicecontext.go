package svc

import (
	"fmt"

	"github.com/joeblew999/plat-welcome/internal/config"
	"github.com/joeblew999/plat-welcome/internal/events"
	"github.com/joeblew999/plat-welcome/internal/model"
	"github.com/joeblew999/plat-welcome/pkg/db"
	"github.com/joeblew999/plat-welcome/pkg/mail"
	"github.com/joeblew999/plat-welcome/pkg/mjml"
	"github.com/joeblew999/plat-welcome/pkg/notify"
	"github.com/zeromicro/go-zero/core/logx"
)

type ServiceContext struct {
	Config     config.Config
	DB         *db.DB
	UsersModel model.UsersModel
	Store      *model.Store
	Events     *events.Recorder
	Notifier   *notify.Notifier
}

// NewServiceContext opens the database and assembles the notifier from c.
func NewServiceContext(c config.Config) (*ServiceContext, error) {
	database, err := db.Open(c.Database.Path)
	if err != nil {
		return nil, err
	}

	svcCtx, err := newServiceContext(c, database, newSender(c.SMTP))
	if err != nil {
		database.Close()
		return nil, err
	}
	return svcCtx, nil
}

// NewServiceContextWithSender is NewServiceContext over an open database
// with a caller-supplied sender.
func NewServiceContextWithSender(c config.Config, database *db.DB, sender mail.Sender) (*ServiceContext, error) {
	return newServiceContext(c, database, func(*mail.ContentTypeRegistry) mail.Sender { return sender })
}

func newServiceContext(c config.Config, database *db.DB, senderFor func(*mail.ContentTypeRegistry) mail.Sender) (*ServiceContext, error) {
	conn := database.SqlConn()
	users := model.NewUsersModel(conn)
	store := model.NewStore(users)

	recorder, err := events.NewRecorder(conn)
	if err != nil {
		return nil, fmt.Errorf("event recorder: %w", err)
	}

	issuer, err := notify.NewIssuer(c.Notifier.Variant, store, c.Site.LoginURL)
	if err != nil {
		return nil, err
	}

	opts := []notify.ComposerOption{notify.WithTranslator(notify.Catalog(c.Messages))}
	if c.Notifier.Layout == "mjml" {
		opts = append(opts, notify.WithLayout(mjml.NewLayout(mjml.WithDebug(c.Notifier.Debug))))
	}
	composer := notify.NewComposer(c.Site.Notify(), opts...)

	registry := mail.NewContentTypeRegistry()
	notifier := notify.NewNotifier(store, senderFor(registry), composer, issuer,
		notify.WithContentTypeRegistry(registry),
		notify.WithEventRecorder(recorder),
	)

	logx.Infow("Notifier configured",
		logx.Field("variant", notifier.Variant()),
		logx.Field("layout", c.Notifier.Layout),
		logx.Field("log_only", c.SMTP.LogOnly),
		logx.Field("database", database.Path()))

	return &ServiceContext{
		Config:     c,
		DB:         database,
		UsersModel: users,
		Store:      store,
		Events:     recorder,
		Notifier:   notifier,
	}, nil
}

func newSender(c config.SMTPConfig) func(*mail.ContentTypeRegistry) mail.Sender {
	return func(registry *mail.ContentTypeRegistry) mail.Sender {
		if c.LogOnly {
			return mail.NewLogSender(registry)
		}
		return mail.NewSMTPSender(c.Mail(), registry)
	}
}

// Close flushes pending events and closes the database.
func (s *ServiceContext) Close() error {
	s.Events.Flush()
	return s.DB.Close()
}
