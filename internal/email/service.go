package email

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"time"

	"github.com/redis/go-redis/v9"

	"fitbook/internal/logger"
	"fitbook/internal/metrics"
)

const (
	queueKey       = "emails"
	failedQueueKey = "emails:failed"

	maxTries = 3
)

type EmailJob struct {
	Type    string    `json:"type"`
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

type Service struct {
	redis    *redis.Client
	from     string
	fromName string
	smtpHost string
	smtpPort string
	smtpUser string
	smtpPass string
}

func New(fromEmail, fromName, smtpHost, smtpPort, smtpUser, smtpPass, redisAddr string) *Service {
	return &Service{
		redis: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
		from:     fromEmail,
		fromName: fromName,
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		smtpUser: smtpUser,
		smtpPass: smtpPass,
	}
}

// Send queues an email for delivery. The booking flow calls this after its
// transaction has committed; a queue failure is reported to the caller but
// must never undo the booking.
func (s *Service) Send(ctx context.Context, emailType, to, name, subject, body string) error {
	job := EmailJob{
		Type:    emailType,
		To:      to,
		Name:    name,
		Subject: subject,
		Body:    body,
		Tries:   0,
		Created: time.Now(),
	}

	data, err := json.Marshal(job)
	if err != nil {
		logger.Errorf("Failed to marshal email job: %v", err)
		return err
	}

	if err := s.redis.LPush(ctx, queueKey, data).Err(); err != nil {
		logger.Errorf("Failed to queue email to %s: %v", to, err)
		metrics.RecordEmail(emailType, "queue_failed")
		return err
	}

	logger.Info("Email queued", "type", emailType, "to", to, "subject", subject)
	return nil
}

// Start runs the delivery worker until ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	logger.Info("Email worker started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Email worker stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		return
	}

	var job EmailJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("Bad email data: %v", err)
		return
	}

	metrics.EmailQueueLength.Set(float64(s.QueueLength(ctx)))

	job.Tries++
	if err := s.sendNow(job); err != nil {
		logger.Error("Failed to send email", "to", job.To, "attempt", job.Tries, "error", err)

		if job.Tries < maxTries {
			time.Sleep(5 * time.Second)
			data, _ := json.Marshal(job)
			s.redis.LPush(context.Background(), queueKey, data)
		} else {
			logger.Errorf("Email to %s failed after %d attempts", job.To, maxTries)
			metrics.RecordEmail(job.Type, "failed")
			s.saveFailed(job, err)
		}
		return
	}

	metrics.RecordEmail(job.Type, "success")
	logger.Info("Email sent", "type", job.Type, "to", job.To)
}

func (s *Service) sendNow(job EmailJob) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.fromName, s.from)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.smtpUser != "" && s.smtpPass != "" {
		auth = smtp.PlainAuth("", s.smtpUser, s.smtpPass, s.smtpHost)
	}

	addr := s.smtpHost + ":" + s.smtpPort
	return smtp.SendMail(addr, auth, s.from, []string{job.To}, []byte(message))
}

func (s *Service) saveFailed(job EmailJob, err error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(context.Background(), failedQueueKey, data)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, _ := s.redis.LLen(ctx, queueKey).Result()
	return length
}

func (s *Service) Close() error {
	return s.redis.Close()
}

func (s *Service) SendBookingConfirmationToClient(ctx context.Context, to, clientName, trainingType, trainerName, date, timeRange string) error {
	subject := "Booking Confirmed - " + trainingType
	body := fmt.Sprintf(`Hi %s,

Your booking has been confirmed!

Booking details:
- Training: %s
- Trainer: %s
- Date: %s
- Time: %s

Please arrive on time for your session.

- The FitBook Team`, clientName, trainingType, trainerName, date, timeRange)

	return s.Send(ctx, "booking_confirmation", to, clientName, subject, body)
}

func (s *Service) SendBookingNotificationToTrainer(ctx context.Context, to, trainerName, clientName, trainingType, date, timeRange string) error {
	subject := "New Booking - " + trainingType
	body := fmt.Sprintf(`Hi %s,

You have a new booking!

Booking details:
- Client: %s
- Training: %s
- Date: %s
- Time: %s

- The FitBook Team`, trainerName, clientName, trainingType, date, timeRange)

	return s.Send(ctx, "booking_notification", to, trainerName, subject, body)
}

func (s *Service) SendCancellationToClient(ctx context.Context, to, clientName, trainingType, trainerName, date, timeRange string) error {
	subject := "Booking Cancelled - " + trainingType
	body := fmt.Sprintf(`Hi %s,

Your booking has been cancelled.

Cancelled booking:
- Training: %s
- Trainer: %s
- Date: %s
- Time: %s

You are welcome to book another session any time.

- The FitBook Team`, clientName, trainingType, trainerName, date, timeRange)

	return s.Send(ctx, "cancellation", to, clientName, subject, body)
}

func (s *Service) SendCancellationToTrainer(ctx context.Context, to, trainerName, clientName, trainingType, date, timeRange string) error {
	subject := "Booking Cancelled - " + trainingType
	body := fmt.Sprintf(`Hi %s,

A booking for your session was cancelled.

Cancelled booking:
- Client: %s
- Training: %s
- Date: %s
- Time: %s

- The FitBook Team`, trainerName, clientName, trainingType, date, timeRange)

	return s.Send(ctx, "cancellation", to, trainerName, subject, body)
}
