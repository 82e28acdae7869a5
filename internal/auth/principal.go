// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements the principal, its public claim set, and the
login flow that turns a verified password into a signed access token.

# Architecture

There is exactly one [Principal]. It is built once at startup from
configuration and shared read-only by every request, so no locking is
needed anywhere in this package.
*/
package auth

// # Domain Entities

// Principal is the single identity known to the service.
type Principal struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Never leaves the process.
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Age          int    `json:"age"`
	Bio          string `json:"bio"`
	Image        string `json:"image"`
}

// ClaimSet is the public projection of a [Principal]. It is what GET /user
// returns and what every access token carries.
type ClaimSet struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       int    `json:"age"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
}

// ToClaimSet projects principal onto its public fields.
//
// Fields are copied by explicit allow-list: anything added to [Principal]
// stays private until it is listed here.
func ToClaimSet(principal Principal) ClaimSet {
	return ClaimSet{
		Username:  principal.Username,
		FirstName: principal.FirstName,
		LastName:  principal.LastName,
		Age:       principal.Age,
		Bio:       principal.Bio,
		Image:     principal.Image,
	}
}

// Profile of the built-in identity.
const (
	defaultBio = "Ես մեծ հետաքրքրություն ունեմ տեխնոլոգիաների հանդեպ, և սիրում եմ փորձարկել նոր սարքեր ու ծրագրեր: " +
		"Ազատ ժամանակս հիմնականում անցկացնում եմ ֆուտբոլ դիտելով կամ շախմատ խաղալով ։ " +
		"Սիրածս ֆուտբոլի թիմը Barcelona-ն է: " +
		"Գիտակցելով ժամանակակից աշխարհի կարևորությունը, նաև փորձում եմ սովորել նոր լեզուներ՝ թե՛ ծրագրավորման, թե՛ մարդկային։ " +
		"Դե իհարկե, շաբաթը մի քանի անգամ վազքով եմ զբաղվում՝ առողջությունս պահպանելու համար, մեկ էլ սիրում եմ շատ և անիմաստ խոսել։"

	defaultImage = "https://media.istockphoto.com/id/880486494/photo/smiling-businessman-using-laptop.jpg" +
		"?s=612x612&w=0&k=20&c=jNCdH9BlNovO74PeVmSJxVW3SsTktEPK8b4JygmfdqY="
)

// DefaultPrincipal returns the built-in identity with the given bcrypt hash.
func DefaultPrincipal(passwordHash string) Principal {
	return Principal{
		Username:     "gor_manukyan",
		PasswordHash: passwordHash,
		FirstName:    "Գոռ",
		LastName:     "Մանուկյան",
		Age:          58,
		Bio:          defaultBio,
		Image:        defaultImage,
	}
}
