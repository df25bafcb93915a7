package contact

import (
	"errors"
	"testing"

	"codabs/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type fakeMessageRepo struct {
	stored []models.ContactMessage
}

func (r *fakeMessageRepo) Insert(doc interface{}) error {
	r.stored = append(r.stored, *doc.(*models.ContactMessage))
	return nil
}

func (r *fakeMessageRepo) FindByID(id string, dest interface{}) (bool, error)        { return false, nil }
func (r *fakeMessageRepo) FindOne(filter bson.M, dest interface{}) (bool, error)     { return false, nil }
func (r *fakeMessageRepo) Count(filter bson.M) (int64, error)                        { return 0, nil }
func (r *fakeMessageRepo) UpdateSet(id string, set bson.M) (bool, error)             { return false, nil }
func (r *fakeMessageRepo) Delete(id string) (bool, error)                            { return false, nil }
func (r *fakeMessageRepo) FindAll(f bson.M, o *options.FindOptions, d interface{}) error { return nil }

type recordingNotifier struct {
	operatorMails int
	failWith      error
}

func (n *recordingNotifier) Send(to, subject, body string) error { return nil }

func (n *recordingNotifier) SendToOperator(replyTo, subject, body string) error {
	if n.failWith != nil {
		return n.failWith
	}
	n.operatorMails++
	return nil
}

func validMessage() models.ContactMessage {
	return models.ContactMessage{
		Name:      "Jane Mwangi",
		Telephone: "+254700000000",
		From:      "jane@example.com",
		Subject:   "Quote request",
		Message:   "Looking for a quote on a perimeter wall.",
	}
}

func TestSubmit_StoresAndForwards(t *testing.T) {
	repo := &fakeMessageRepo{}
	notifier := &recordingNotifier{}
	svc := &DefaultContactService{Repo: repo, Notifier: notifier}

	require.NoError(t, svc.Submit(validMessage()))

	require.Len(t, repo.stored, 1)
	assert.NotEmpty(t, repo.stored[0].ID)
	assert.Equal(t, 1, notifier.operatorMails)
}

func TestSubmit_RequiresAllFields(t *testing.T) {
	svc := &DefaultContactService{Repo: &fakeMessageRepo{}, Notifier: &recordingNotifier{}}

	for _, mutate := range []func(*models.ContactMessage){
		func(m *models.ContactMessage) { m.Name = "" },
		func(m *models.ContactMessage) { m.Telephone = "" },
		func(m *models.ContactMessage) { m.From = "" },
		func(m *models.ContactMessage) { m.Subject = "" },
		func(m *models.ContactMessage) { m.Message = "" },
	} {
		msg := validMessage()
		mutate(&msg)

		var verr *ValidationError
		require.ErrorAs(t, svc.Submit(msg), &verr)
	}
}

func TestSubmit_StoredEvenWhenForwardFails(t *testing.T) {
	repo := &fakeMessageRepo{}
	notifier := &recordingNotifier{failWith: errors.New("smtp unreachable")}
	svc := &DefaultContactService{Repo: repo, Notifier: notifier}

	err := svc.Submit(validMessage())
	require.Error(t, err)
	// The message is already stored; the error just tells the visitor the
	// forward failed.
	assert.Len(t, repo.stored, 1)
}
