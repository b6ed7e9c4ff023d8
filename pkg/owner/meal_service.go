package owner

import (
	"breakfast4u-web/domain"
	"breakfast4u-web/entities"
	"breakfast4u-web/pkg/api"
	"breakfast4u-web/pkg/catalog"
	"breakfast4u-web/pkg/listview"
	"breakfast4u-web/pkg/session"
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// noticeTTL is how long a success notice stays visible after a mutation.
const noticeTTL = 3 * time.Second

type (
	// MealService manages a store owner's menu: the owner's meal list plus
	// create/update/delete/toggle against the remote API. Writes are never
	// applied optimistically; every successful mutation refetches the
	// authoritative list.
	MealService interface {
		Refresh(ctx context.Context, sess *session.Session)
		Meals(sess *session.Session, timeOfDay string) []entities.Meal
		Status(sess *session.Session) listview.Status
		LoadError(sess *session.Session) string
		Notice(sess *session.Session) string

		Create(ctx context.Context, sess *session.Session, form domain.MealForm, timeOfDay string) error
		Update(ctx context.Context, sess *session.Session, mealID string, form domain.MealForm, timeOfDay string) error
		Delete(ctx context.Context, sess *session.Session, mealID string, confirmed bool) error
		ToggleAvailability(ctx context.Context, sess *session.Session, mealID string) error
	}

	mealService struct {
		client    api.Client
		validator *validator.Validate

		mu     sync.Mutex
		states map[string]*dashboardState
	}

	// dashboardState is one signed-in owner's dashboard: the meal list
	// controller and the transient success notice.
	dashboardState struct {
		controller *listview.Controller[entities.Meal]

		mu       sync.Mutex
		notice   string
		noticeAt time.Time
	}
)

var mealFieldMessages = map[string]string{
	"Name":            "Item name is required",
	"Description":     "Description is required",
	"Price":           "Price must be zero or more",
	"Image":           "Image URL is required",
	"Category":        "Category is required",
	"TimeOfDay":       "Time of day is invalid",
	"PreparationTime": "Preparation time is required",
}

func NewMealService(client api.Client, validator *validator.Validate) MealService {
	return &mealService{
		client:    client,
		validator: validator,
		states:    make(map[string]*dashboardState),
	}
}

func (s *mealService) state(sess *session.Session) *dashboardState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.states[sess.ID]
	if !ok {
		token := sess.Token
		st = &dashboardState{
			controller: listview.NewController(func(ctx context.Context) ([]entities.Meal, error) {
				return s.client.ListOwnerMeals(ctx, token)
			}),
		}
		s.states[sess.ID] = st
	}
	return st
}

func (s *mealService) Refresh(ctx context.Context, sess *session.Session) {
	s.state(sess).controller.Load(ctx)
}

func (s *mealService) Meals(sess *session.Session, timeOfDay string) []entities.Meal {
	items := s.state(sess).controller.Items()
	if timeOfDay == "" {
		return items
	}
	return catalog.MealsByTimeOfDay(items, timeOfDay)
}

func (s *mealService) Status(sess *session.Session) listview.Status {
	return s.state(sess).controller.Status()
}

func (s *mealService) LoadError(sess *session.Session) string {
	return s.state(sess).controller.Err()
}

func (s *mealService) Notice(sess *session.Session) string {
	st := s.state(sess)
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.notice == "" || time.Since(st.noticeAt) > noticeTTL {
		return ""
	}
	return st.notice
}

func (s *mealService) Create(ctx context.Context, sess *session.Session, form domain.MealForm, timeOfDay string) error {
	req, err := s.buildRequest(form, timeOfDay)
	if err != nil {
		return err
	}

	if _, err := s.client.CreateMeal(ctx, sess.Token, *req); err != nil {
		return err
	}

	s.finishMutation(ctx, sess, domain.MessageSuccessCreateMeal)
	return nil
}

func (s *mealService) Update(ctx context.Context, sess *session.Session, mealID string, form domain.MealForm, timeOfDay string) error {
	req, err := s.buildRequest(form, timeOfDay)
	if err != nil {
		return err
	}

	if _, err := s.client.UpdateMeal(ctx, sess.Token, mealID, *req); err != nil {
		return err
	}

	s.finishMutation(ctx, sess, domain.MessageSuccessUpdateMeal)
	return nil
}

func (s *mealService) Delete(ctx context.Context, sess *session.Session, mealID string, confirmed bool) error {
	if !confirmed {
		return domain.ErrDeleteNotConfirmed
	}

	if err := s.client.DeleteMeal(ctx, sess.Token, mealID); err != nil {
		return err
	}

	s.finishMutation(ctx, sess, domain.MessageSuccessDeleteMeal)
	return nil
}

// ToggleAvailability resends the full meal payload with only isAvailable
// flipped. No confirmation step.
func (s *mealService) ToggleAvailability(ctx context.Context, sess *session.Session, mealID string) error {
	var meal *entities.Meal
	for _, item := range s.state(sess).controller.Items() {
		if item.ID == mealID {
			meal = &item
			break
		}
	}
	if meal == nil {
		return errors.New(domain.MessageFailedToggleAvailability)
	}

	req := domain.MealRequest{
		Name:            meal.Name,
		Description:     meal.Description,
		Price:           meal.Price,
		Image:           meal.Image,
		Category:        meal.Category,
		TimeOfDay:       meal.TimeOfDay,
		Tags:            meal.Tags,
		PreparationTime: meal.PreparationTime,
		IsAvailable:     !meal.IsAvailable,
	}

	if _, err := s.client.UpdateMeal(ctx, sess.Token, mealID, req); err != nil {
		return err
	}

	s.state(sess).controller.Load(ctx)
	return nil
}

// buildRequest normalizes the form into the API payload and runs client-side
// validation. Nothing goes over the wire when validation fails.
func (s *mealService) buildRequest(form domain.MealForm, timeOfDay string) (*domain.MealRequest, error) {
	fields := make(map[string]string)

	price, err := strconv.ParseFloat(form.Price, 64)
	if form.Price == "" || err != nil {
		fields["price"] = "Price is required"
	}

	prepTime := 15
	if form.PreparationTime != "" {
		prepTime, err = strconv.Atoi(form.PreparationTime)
		if err != nil {
			fields["preparationTime"] = mealFieldMessages["PreparationTime"]
			prepTime = 0
		}
	}

	tags := form.Tags
	if tags == nil {
		tags = []string{}
	}

	req := &domain.MealRequest{
		Name:            form.Name,
		Description:     form.Description,
		Price:           price,
		Image:           form.Image,
		Category:        form.Category,
		TimeOfDay:       timeOfDay,
		Tags:            tags,
		PreparationTime: prepTime,
		IsAvailable:     true,
	}

	if err := s.validator.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				name := jsonFieldName(fe.Field())
				if _, taken := fields[name]; !taken {
					fields[name] = mealFieldMessages[fe.Field()]
				}
			}
		} else {
			return nil, err
		}
	}

	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}
	return req, nil
}

func jsonFieldName(structField string) string {
	switch structField {
	case "Name":
		return "name"
	case "Description":
		return "description"
	case "Price":
		return "price"
	case "Image":
		return "image"
	case "Category":
		return "category"
	case "TimeOfDay":
		return "timeOfDay"
	case "PreparationTime":
		return "preparationTime"
	default:
		return structField
	}
}

// finishMutation sets the success notice and refetches the owner's list; the
// in-memory collection is never patched directly.
func (s *mealService) finishMutation(ctx context.Context, sess *session.Session, notice string) {
	st := s.state(sess)
	st.mu.Lock()
	st.notice = notice
	st.noticeAt = time.Now()
	st.mu.Unlock()

	st.controller.Load(ctx)
}
