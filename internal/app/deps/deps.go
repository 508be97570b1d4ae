package deps

import (
	"accounts/internal/config"
	"accounts/internal/core/domain/email"
	dl "accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/metrics"
	duow "accounts/internal/core/domain/unit_of_work"
	"accounts/internal/core/domain/user"
	uow "accounts/internal/db/unit_of_work"
	dbuser "accounts/internal/db/user"
	emailsender "accounts/internal/implementations/email"
	"accounts/internal/implementations/logging"
	prometheusmetrics "accounts/internal/implementations/metrics"
	passwordhasher "accounts/internal/implementations/password_hasher"
	randomstringgenerator "accounts/internal/implementations/random_string_generator"
	"context"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	DB *pgxpool.Pool

	Now func() time.Time

	UnitOfWork                   duow.UnitOfWork
	UserRepository               user.UserRepository
	PasswordResetTokenRepository user.PasswordResetTokenRepository

	EmailSender                  email.Sender
	PasswordHasher               user.PasswordHasher
	PasswordResetSecretGenerator user.PasswordResetSecretGenerator
	PasswordResetTokenSender     user.PasswordResetTokenSender

	MetricsRegistry *prometheus.Registry
	MetricsRecorder metrics.Recorder
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()

	deps.Now = func() time.Time { return time.Now().UTC() }

	deps.UnitOfWork = uow.NewPgxUnitOfWork(deps.DB)
	deps.UserRepository = dbuser.NewPgxRepository(deps.DB)
	deps.PasswordResetTokenRepository = dbuser.NewPgxPasswordResetTokenRepository(deps.DB)

	deps.EmailSender = deps.initEmailSender()
	deps.PasswordHasher = passwordhasher.NewBcrypt(deps.Config.Secret, deps.Config.BcryptHasherCost)
	deps.PasswordResetSecretGenerator = randomstringgenerator.NewGenerator()
	deps.PasswordResetTokenSender = emailsender.NewPasswordResetTokenSender(
		deps.EmailSender,
		deps.Config.EmailSender,
		deps.Config.PasswordResetBaseURL,
	)

	deps.MetricsRegistry = prometheus.NewRegistry()
	deps.MetricsRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	deps.MetricsRecorder = prometheusmetrics.NewPrometheusRecorder(deps.MetricsRegistry)

	return deps, func() {
		closeFuncs := []func(){
			closePgxPool,
			closeLogger,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger(deps.Config.IsTestMode)
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initEmailSender() email.Sender {
	if deps.Config.EmailDriver == config.EmailDriverSMTP {
		deps.Logger.Info(
			context.Background(),
			"Emails are sent via SMTP.",
			dl.Entry("host", deps.Config.SMTPHost),
			dl.Entry("port", deps.Config.SMTPPort),
		)
		return emailsender.NewSMTPSender(
			deps.Config.SMTPHost,
			deps.Config.SMTPPort,
			deps.Config.SMTPUsername,
			deps.Config.SMTPPassword,
		)
	}

	deps.Logger.Info(context.Background(), "Emails are sent via SES.", dl.Entry("region", deps.Config.AwsRegion))
	return emailsender.NewSESSender(deps.initAwsConfig())
}

func (deps *Deps) initAwsConfig() aws.Config {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	return cfg
}
