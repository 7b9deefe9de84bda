package usecase

import "context"

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

// MailModer reports which delivery path is active
type MailModer interface {
	Mode() string
}

type healthUsecase struct {
	mail MailModer
}

func NewHealthUsecase(mail MailModer) HealthUsecase {
	return &healthUsecase{mail: mail}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status": "ok",
	}
	if u.mail != nil {
		status["mail_mode"] = u.mail.Mode()
	}
	return status
}
