package scaffold

import (
	"os"
	"path/filepath"
	"strings"
)

const utilsTS = `import { clsx, type ClassValue } from "clsx"
import { twMerge } from "tailwind-merge"

export function cn(...inputs: ClassValue[]) {
  return twMerge(clsx(inputs))
}
`

const utilsJS = `import { clsx } from "clsx"
import { twMerge } from "tailwind-merge"

export function cn(...inputs) {
  return twMerge(clsx(inputs))
}
`

// WriteUtils overwrites lib/utils with the class-name helper shadcn
// components import. Only called for Tailwind projects.
func WriteUtils(root string, useSrc, ts bool) error {
	content := utilsJS
	if ts {
		content = utilsTS
	}
	path := filepath.Join(BaseDir(root, useSrc), "lib", "utils."+ScriptExt(ts))
	return atomicWrite(path, content)
}

const authConfig = `import NextAuth from "next-auth"
import GitHub from "next-auth/providers/github"

export const { handlers, auth, signIn, signOut } = NextAuth({
  providers: [GitHub],
})
`

// WriteAuthConfig overwrites lib/auth with the NextAuth bootstrap.
func WriteAuthConfig(root string, useSrc, ts bool) error {
	path := filepath.Join(BaseDir(root, useSrc), "lib", "auth."+ScriptExt(ts))
	return atomicWrite(path, authConfig)
}

const authRoute = `import { handlers } from "@/lib/auth"

export const { GET, POST } = handlers
`

// WriteAuthRoute overwrites the catch-all API route that serves NextAuth.
// The route re-exports the handlers from lib/auth by import path convention.
func WriteAuthRoute(root string, useSrc, ts bool) error {
	path := filepath.Join(BaseDir(root, useSrc), "app", "api", "auth", "[...nextauth]", "route."+ScriptExt(ts))
	return atomicWrite(path, authRoute)
}

// EnvMarker guards the environment block against repeated insertion.
const EnvMarker = "NEXTAUTH_URL"

const envBlock = `
# Added by nextstart. Fill in the providers you use.
# AUTH_GITHUB_ID=
# AUTH_GITHUB_SECRET=
# AUTH_GOOGLE_ID=
# AUTH_GOOGLE_SECRET=
# DATABASE_URL=
NEXTAUTH_URL=http://localhost:3000
`

// AppendEnv appends the auth environment block to .env.local unless the
// marker is already present. The file may have been created earlier by an
// external tool (auth secret), so existing content is preserved. Returns
// whether the block was written.
func AppendEnv(root string) (bool, error) {
	path := filepath.Join(root, ".env.local")

	existing := ""
	if data, err := os.ReadFile(path); err == nil {
		existing = string(data)
	}

	if strings.Contains(existing, EnvMarker) {
		return false, nil
	}

	content := existing
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += envBlock

	if err := atomicWrite(path, content); err != nil {
		return false, err
	}
	return true, nil
}

const themeProviderTSX = `"use client"

import * as React from "react"
import { ThemeProvider as NextThemesProvider } from "next-themes"

export function ThemeProvider({
  children,
  ...props
}: React.ComponentProps<typeof NextThemesProvider>) {
  return <NextThemesProvider {...props}>{children}</NextThemesProvider>
}
`

const themeProviderJSX = `"use client"

import * as React from "react"
import { ThemeProvider as NextThemesProvider } from "next-themes"

export function ThemeProvider({ children, ...props }) {
  return <NextThemesProvider {...props}>{children}</NextThemesProvider>
}
`

// WriteThemeProvider overwrites components/theme-provider with the
// next-themes wrapper.
func WriteThemeProvider(root string, useSrc, ts bool) error {
	content := themeProviderJSX
	if ts {
		content = themeProviderTSX
	}
	path := filepath.Join(BaseDir(root, useSrc), "components", "theme-provider."+MarkupExt(ts))
	return atomicWrite(path, content)
}

const tailwindShimTS = `/** @type {import('tailwindcss').Config} */
module.exports = {
  content: [
    "./app/**/*.{ts,tsx}",
    "./components/**/*.{ts,tsx}",
    "./src/**/*.{ts,tsx}",
  ],
}
`

const tailwindShimJS = `/** @type {import('tailwindcss').Config} */
module.exports = {
  content: [
    "./app/**/*.{js,jsx}",
    "./components/**/*.{js,jsx}",
    "./src/**/*.{js,jsx}",
  ],
}
`

// WriteTailwindShim writes a minimal legacy-style tailwind.config.js at the
// project root. On Tailwind v4 projects the PostCSS config governs actual
// styling; this file only gives the shadcn generator content globs to read.
func WriteTailwindShim(root string, ts bool) error {
	content := tailwindShimJS
	if ts {
		content = tailwindShimTS
	}
	return atomicWrite(filepath.Join(root, "tailwind.config.js"), content)
}
