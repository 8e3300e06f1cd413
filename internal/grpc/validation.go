package grpc

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/godilite/interview-coach/api/v1"
	"github.com/godilite/interview-coach/internal/service"
)

// Request shapes checked before they reach the service. Empty interview
// types and dev fields are allowed and take their defaults downstream.
type sendMessageInput struct {
	Message       string `validate:"required"`
	QuestionCount int32  `validate:"gte=0"`
	InterviewType string `validate:"omitempty,interview_type"`
	DevField      string `validate:"omitempty,dev_field"`
}

type scoreSetInput struct {
	Overall       int32 `validate:"gte=0,lte=100"`
	Technical     int32 `validate:"gte=0,lte=100"`
	Communication int32 `validate:"gte=0,lte=100"`
}

type recordInterviewInput struct {
	Scores        *scoreSetInput `validate:"required"`
	InterviewType string         `validate:"omitempty,interview_type"`
	DevField      string         `validate:"omitempty,dev_field"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("interview_type", func(fl validator.FieldLevel) bool {
		_, err := service.ParseInterviewType(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("dev_field", func(fl validator.FieldLevel) bool {
		_, err := service.ParseDevField(fl.Field().String())
		return err == nil
	})
	return v
}

func (s *GRPCHandlers) validateSendMessage(req *pb.SendMessageRequest) error {
	return s.validateStruct(&sendMessageInput{
		Message:       req.Message,
		QuestionCount: req.QuestionCount,
		InterviewType: req.InterviewType,
		DevField:      req.DevField,
	})
}

func (s *GRPCHandlers) validateRecordInterview(req *pb.RecordInterviewRequest) error {
	in := &recordInterviewInput{
		InterviewType: req.InterviewType,
		DevField:      req.DevField,
	}
	if req.Scores != nil {
		in.Scores = &scoreSetInput{
			Overall:       req.Scores.Overall,
			Technical:     req.Scores.Technical,
			Communication: req.Scores.Communication,
		}
	}
	return s.validateStruct(in)
}

func (s *GRPCHandlers) validateStruct(in any) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		ve := verrs[0]
		return status.Error(codes.InvalidArgument,
			fmt.Sprintf("validation error: %s - %s", ve.Namespace(), ve.Tag()))
	}
	return status.Error(codes.InvalidArgument, "validation error: invalid request")
}

func (s *GRPCHandlers) parseAndValidate(req *pb.InterviewBreakdownRequest) (start, end time.Time, err error) {
	if req.GetStartDate() == nil || req.GetEndDate() == nil {
		err = status.Error(codes.InvalidArgument, "start and end dates are required")
		return
	}

	start = req.GetStartDate().AsTime()
	end = req.GetEndDate().AsTime()

	if end.Before(start) {
		err = status.Error(codes.InvalidArgument, "end date must be after start date")
		return
	}

	start, end = dayWindow(start, end)
	return
}
