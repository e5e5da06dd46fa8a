// cmd/client/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	schedulev1 "github.com/buildcrew/sitemaster/api/proto/schedule/v1/generated"
	taskv1 "github.com/buildcrew/sitemaster/api/proto/task/v1/generated"
	"github.com/buildcrew/sitemaster/internal/workflow"
	"github.com/buildcrew/sitemaster/pkg/auth"
)

// Smoke-test client: walks the create-then-populate flow and the
// two-phase delete against a running local server. Needs a user row
// matching OWNER_ID, see cmd/migrate.
func main() {
	fmt.Println("SiteMaster Test Client")
	fmt.Println("======================")

	conn, err := grpc.NewClient("localhost:50051", grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer conn.Close()

	scheduleClient := schedulev1.NewScheduleServiceClient(conn)
	taskClient := taskv1.NewTaskServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	ctx = authenticatedContext(ctx)

	// TEST 1: create a schedule, then populate its tasks. The flow
	// tracker mirrors what a portal frontend drives.
	fmt.Println("\nTEST 1: Create-then-populate flow")

	flow := workflow.NewCreateFlow()
	must(flow.Begin())

	createResp, err := scheduleClient.CreateSchedule(ctx, &schedulev1.CreateScheduleRequest{
		Description: "Foundation works, block A",
		LotId:       uuid.New().String(),
		ProjectId:   "demo-project",
		StartDate:   "2026-09-07",
		EndDate:     "2026-10-04",
	})
	if err != nil {
		log.Fatalf("CreateSchedule failed: %v", err)
	}
	scheduleID := createResp.Schedule.Id
	must(flow.ScheduleCreated(uuid.MustParse(scheduleID)))
	fmt.Printf("  created schedule %s (%s .. %s)\n", scheduleID, createResp.Schedule.StartDate, createResp.Schedule.EndDate)

	populateResp, err := taskClient.PopulateTasks(ctx, &taskv1.PopulateTasksRequest{
		ScheduleId: scheduleID,
		Tasks: []*taskv1.DraftTask{
			{Title: "Excavation", Priority: taskv1.Priority_PRIORITY_HIGH, PeriodStart: "2026-09-07", PeriodEnd: "2026-09-11"},
			{Title: "Formwork", PeriodStart: "2026-09-14", PeriodEnd: "2026-09-18"},
			{Title: "Concrete pour", Priority: taskv1.Priority_PRIORITY_VERY_HIGH, PeriodStart: "2026-09-21", PeriodEnd: "2026-09-25"},
		},
	})
	if err != nil {
		log.Fatalf("PopulateTasks failed: %v", err)
	}
	must(flow.TasksPopulated(len(populateResp.Tasks)))
	fmt.Printf("  populated %d tasks, flow state: %s\n", len(populateResp.Tasks), flow.State())

	// TEST 2: current week listing
	fmt.Println("\nTEST 2: List schedules for the current week")
	listResp, err := scheduleClient.ListSchedules(ctx, &schedulev1.ListSchedulesRequest{CurrentWeekOnly: true})
	if err != nil {
		log.Fatalf("ListSchedules failed: %v", err)
	}
	fmt.Printf("  %d schedules intersect the running week\n", len(listResp.Schedules))

	// TEST 3: two-phase delete with a cancel first
	fmt.Println("\nTEST 3: Two-phase delete")
	reqResp, err := scheduleClient.RequestDeleteSchedule(ctx, &schedulev1.RequestDeleteScheduleRequest{Id: scheduleID})
	if err != nil {
		log.Fatalf("RequestDeleteSchedule failed: %v", err)
	}
	fmt.Printf("  warning: %s\n", reqResp.Warning)

	if _, err := scheduleClient.CancelDeleteSchedule(ctx, &schedulev1.CancelDeleteScheduleRequest{ConfirmationToken: reqResp.ConfirmationToken}); err != nil {
		log.Fatalf("CancelDeleteSchedule failed: %v", err)
	}
	fmt.Println("  first request cancelled, schedule untouched")

	reqResp, err = scheduleClient.RequestDeleteSchedule(ctx, &schedulev1.RequestDeleteScheduleRequest{Id: scheduleID})
	if err != nil {
		log.Fatalf("RequestDeleteSchedule failed: %v", err)
	}
	if _, err := scheduleClient.ConfirmDeleteSchedule(ctx, &schedulev1.ConfirmDeleteScheduleRequest{ConfirmationToken: reqResp.ConfirmationToken}); err != nil {
		log.Fatalf("ConfirmDeleteSchedule failed: %v", err)
	}
	fmt.Printf("  schedule and its %d tasks deleted\n", reqResp.TaskCount)

	fmt.Println("\nAll tests passed")
}

func authenticatedContext(ctx context.Context) context.Context {
	ownerID := os.Getenv("OWNER_ID")
	if ownerID == "" {
		ownerID = uuid.New().String()
	}

	tm := auth.NewTokenManager(
		getEnv("JWT_ACCESS_SECRET", "dev-access-secret-change-in-production"),
		getEnv("JWT_ISSUER", "sitemaster"),
	)
	token, err := tm.GenerateAccessToken(ownerID, "owner@example.com", "owner", 15*time.Minute)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}

	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
}

func must(err error) {
	if err != nil {
		log.Fatalf("Unexpected flow state: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
