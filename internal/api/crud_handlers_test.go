package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"workout-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserEndpoints_CreateAssociateDelete(t *testing.T) {
	router, store := newTestServer(t)
	require.NoError(t, store.Workouts().Create(context.Background(), &domain.Workout{ID: "w1"}))

	recorder := doRequest(router, http.MethodPost, "/api/v1/users/alice", "")
	require.Equal(t, http.StatusCreated, recorder.Code)
	var user UserResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &user))
	assert.Equal(t, "alice", user.UserID)
	assert.Empty(t, user.AssociatedWorkoutIDs)

	// Duplicate user id.
	recorder = doRequest(router, http.MethodPost, "/api/v1/users/alice", "")
	assert.Equal(t, http.StatusConflict, recorder.Code)

	recorder = doRequest(router, http.MethodPost, "/api/v1/users/alice/workouts/w1", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &user))
	assert.Equal(t, []string{"w1"}, user.AssociatedWorkoutIDs)
	assert.Contains(t, user.Message, "Successfully added")

	// Re-associating the same workout conflicts.
	recorder = doRequest(router, http.MethodPost, "/api/v1/users/alice/workouts/w1", "")
	assert.Equal(t, http.StatusConflict, recorder.Code)

	// Associating a missing workout is a 404.
	recorder = doRequest(router, http.MethodPost, "/api/v1/users/alice/workouts/missing", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = doRequest(router, http.MethodDelete, "/api/v1/users/alice/workouts/w1", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doRequest(router, http.MethodDelete, "/api/v1/users/alice", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	recorder = doRequest(router, http.MethodGet, "/api/v1/users/alice", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestWorkoutEndpoints_CreateAndGet(t *testing.T) {
	router, _ := newTestServer(t)

	recorder := doRequest(router, http.MethodPost, "/api/v1/workouts",
		`{"workout_plan":[{"day":"Monday","exercises_ids":["s1","s2"]},{"day":"Rest"}]}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var workout WorkoutResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &workout))
	require.NotEmpty(t, workout.WorkoutID)
	require.Len(t, workout.WorkoutPlan, 2)
	assert.Equal(t, "Monday", workout.WorkoutPlan[0].Day)
	assert.Equal(t, []string{"s1", "s2"}, workout.WorkoutPlan[0].ExercisesIDs)
	// A day without sets comes back as an empty list, not null.
	assert.NotNil(t, workout.WorkoutPlan[1].ExercisesIDs)
	assert.Empty(t, workout.WorkoutPlan[1].ExercisesIDs)

	recorder = doRequest(router, http.MethodGet, "/api/v1/workouts/"+workout.WorkoutID, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	// A day with no label is rejected.
	recorder = doRequest(router, http.MethodPost, "/api/v1/workouts",
		`{"workout_plan":[{"day":"","exercises_ids":[]}]}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSetEndpoints_CreateGetDelete(t *testing.T) {
	router, _ := newTestServer(t)

	recorder := doRequest(router, http.MethodPost, "/api/v1/sets",
		`{"name":"Bench 3x8","exercise_id":"bench","reps":8,"weight":60.5}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var set SetResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &set))
	require.NotEmpty(t, set.ID)
	assert.Equal(t, "Bench 3x8", set.Name)
	assert.Equal(t, "bench", set.ExerciseID)
	require.NotNil(t, set.Reps)
	assert.Equal(t, 8, *set.Reps)
	require.NotNil(t, set.Weight)
	assert.Equal(t, 60.5, *set.Weight)
	assert.Nil(t, set.DurationSec)

	recorder = doRequest(router, http.MethodGet, "/api/v1/sets/"+set.ID, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	// Name and exercise id are required.
	recorder = doRequest(router, http.MethodPost, "/api/v1/sets", `{"name":"No exercise"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = doRequest(router, http.MethodDelete, "/api/v1/sets/"+set.ID, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	recorder = doRequest(router, http.MethodGet, "/api/v1/sets/"+set.ID, "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestExerciseEndpoints_CreateGetDelete(t *testing.T) {
	router, _ := newTestServer(t)

	recorder := doRequest(router, http.MethodPost, "/api/v1/exercises",
		`{"exercise_id":"bench_press","name":"Bench Press","level":"beginner","primaryMuscles":["chest"],"category":"strength"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var exercise ExerciseResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &exercise))
	assert.Equal(t, "bench_press", exercise.ExerciseID)
	assert.Equal(t, "Bench Press", exercise.Name)

	// Duplicate id conflicts.
	recorder = doRequest(router, http.MethodPost, "/api/v1/exercises",
		`{"exercise_id":"bench_press","name":"Bench Press"}`)
	assert.Equal(t, http.StatusConflict, recorder.Code)

	recorder = doRequest(router, http.MethodGet, "/api/v1/exercises/bench_press", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doRequest(router, http.MethodDelete, "/api/v1/exercises/bench_press", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	recorder = doRequest(router, http.MethodGet, "/api/v1/exercises/bench_press", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
