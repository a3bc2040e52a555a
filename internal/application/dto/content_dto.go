package dto

// UpdateContentRequest parche tipado del contenido de una variante.
// Cada sección es opcional; dentro de una sección presente, solo los campos
// no nulos se aplican. El llamador nunca reconstruye objetos anidados.
type UpdateContentRequest struct {
	Logo     *LogoPatch     `json:"logo"`
	Hero     *HeroPatch     `json:"hero"`
	About    *AboutPatch    `json:"about"`
	Services *ServicesPatch `json:"services"`
	Contact  *ContactPatch  `json:"contact"`
	Colors   *ColorsPatch   `json:"colors"`
	Footer   *FooterPatch   `json:"footer"`
}

// LogoPatch campos editables del logo.
type LogoPatch struct {
	Image *string `json:"image"`
	Alt   *string `json:"alt"`
}

// HeroPatch campos editables del encabezado.
type HeroPatch struct {
	Title           *string `json:"title"`
	Subtitle        *string `json:"subtitle"`
	CTAText         *string `json:"ctaText"`
	BackgroundImage *string `json:"backgroundImage"`
}

// AboutPatch campos editables de la sección "quiénes somos".
type AboutPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// ServicesPatch campos editables de los servicios destacados.
// Items, cuando está presente, reemplaza la lista completa (los ítems son
// una secuencia ordenada, no un mapa parcheable).
type ServicesPatch struct {
	Title *string             `json:"title"`
	Items *[]ServiceItemInput `json:"items"`
}

// ServiceItemInput un servicio destacado de entrada.
type ServiceItemInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Icon        string `json:"icon"`
}

// ContactPatch campos editables de contacto.
type ContactPatch struct {
	Title   *string `json:"title"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Hours   *string `json:"hours"`
}

// ColorsPatch campos editables del tema de color.
type ColorsPatch struct {
	Primary   *string `json:"primary"`
	Secondary *string `json:"secondary"`
	Accent    *string `json:"accent"`
}

// FooterPatch campos editables del pie de página.
type FooterPatch struct {
	Copyright *string `json:"copyright"`
}
