package services

import (
	"mapacademy/internal/app/deps"
	"mapacademy/internal/core/services"
	createarticle "mapacademy/internal/core/services/create_article"
	getarticle "mapacademy/internal/core/services/get_article"
	listarticles "mapacademy/internal/core/services/list_articles"
	loginwithemail "mapacademy/internal/core/services/log_in_with_email"
	resetpassword "mapacademy/internal/core/services/reset_password"
	sendpasswordresettoken "mapacademy/internal/core/services/send_password_reset_token"
	signupwithemail "mapacademy/internal/core/services/sign_up_with_email"
	validatepasswordresettoken "mapacademy/internal/core/services/validate_password_reset_token"
)

type Services struct {
	SignUpWithEmail            services.Service[signupwithemail.Input, signupwithemail.Result]
	LogInWithEmail             services.Service[loginwithemail.Input, loginwithemail.Result]
	SendPasswordResetToken     services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result]
	ValidatePasswordResetToken services.Service[validatepasswordresettoken.Input, validatepasswordresettoken.Result]
	ResetPassword              services.Service[resetpassword.Input, resetpassword.Result]

	CreateArticle services.Service[createarticle.Input, createarticle.Result]
	ListArticles  services.Service[listarticles.Input, listarticles.Result]
	GetArticle    services.Service[getarticle.Input, getarticle.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SignUpWithEmail = signupwithemail.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordHasher,
		deps.Now,
	)
	s.LogInWithEmail = loginwithemail.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordHasher,
		deps.AccessTokenIssuer,
	)
	s.SendPasswordResetToken = sendpasswordresettoken.NewWithTokenSending(
		deps.Logger,
		deps.PasswordResetTokenSender,
		sendpasswordresettoken.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordResetTokenGenerator,
			deps.Config.PasswordResetValidDuration,
			deps.Now,
		),
	)
	s.ValidatePasswordResetToken = validatepasswordresettoken.New(
		deps.Logger,
		deps.UserRepository,
		deps.Now,
	)
	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordHasher,
		deps.Now,
	)

	s.CreateArticle = createarticle.New(
		deps.Logger,
		deps.ArticleRepository,
		deps.Now,
	)
	s.ListArticles = listarticles.New(
		deps.Logger,
		deps.ArticleRepository,
	)
	s.GetArticle = getarticle.New(
		deps.Logger,
		deps.ArticleRepository,
	)

	return s
}
