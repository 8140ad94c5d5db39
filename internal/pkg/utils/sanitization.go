package utils

import (
	"strings"

	"docnet-client/internal/pkg/dto/requests"
)

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = strings.TrimSpace(input.Email)
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
}

func SanitizeRegisterRequest(input *requests.Register) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
	input.NMCNumber = strings.TrimSpace(input.NMCNumber)
	input.Specialization = strings.TrimSpace(input.Specialization)
	input.Location = strings.TrimSpace(input.Location)
}

func SanitizeVerifyNMCRequest(input *requests.VerifyNMC) {
	input.NMCNumber = strings.TrimSpace(input.NMCNumber)
}

func SanitizeCreateCasePostRequest(input *requests.CreateCasePost) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.Symptoms = strings.TrimSpace(input.Symptoms)
	input.PatientGender = strings.ToLower(strings.TrimSpace(input.PatientGender))
}

func SanitizeCreateCommentRequest(input *requests.CreateComment) {
	input.Content = strings.TrimSpace(input.Content)
}

func SanitizeCreateDonationRequest(input *requests.CreateDonation) {
	input.Type = strings.ToLower(strings.TrimSpace(input.Type))
	input.Urgency = strings.ToLower(strings.TrimSpace(input.Urgency))
	input.PatientName = strings.TrimSpace(input.PatientName)
	input.HospitalName = strings.TrimSpace(input.HospitalName)
	input.Location = strings.TrimSpace(input.Location)
	input.ContactPhone = strings.TrimSpace(input.ContactPhone)
	input.Description = strings.TrimSpace(input.Description)
	input.CreatedBy = strings.TrimSpace(input.CreatedBy)
}

func SanitizeDiagnoseRequest(input *requests.Diagnose) {
	input.Symptoms = strings.TrimSpace(input.Symptoms)
}
